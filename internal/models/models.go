package models

import (
	"errors"
	"time"
)

// MenuSummary is the snapshot of a menu the editor screens work with
type MenuSummary struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// FilterValue lets a MenuSummary be used as a bubbles list item
func (m MenuSummary) FilterValue() string {
	return m.Name
}

// Menu represents a named, ordered navigation structure
type Menu struct {
	ID    int        `json:"id" yaml:"id"`
	Name  string     `json:"name" yaml:"name"`
	Slug  string     `json:"slug" yaml:"slug"`
	Items []MenuItem `json:"items" yaml:"items"`
}

// Summary returns the MenuSummary for this menu
func (m *Menu) Summary() MenuSummary {
	return MenuSummary{ID: m.ID, Name: m.Name}
}

// MenuItem is a single link inside a menu
type MenuItem struct {
	ClientID string `json:"client_id" yaml:"client_id"`
	Label    string `json:"label" yaml:"label"`
	URL      string `json:"url" yaml:"url"`
}

// Post is an editable post; only the title is edited interactively
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostEdits is a partial update to a post. Nil fields are left untouched.
type PostEdits struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// IsEmpty reports whether the edits change nothing
func (e PostEdits) IsEmpty() bool {
	return e.Title == nil && e.Content == nil
}

// Merge returns e with every field set in other applied on top
func (e PostEdits) Merge(other PostEdits) PostEdits {
	if other.Title != nil {
		title := *other.Title
		e.Title = &title
	}
	if other.Content != nil {
		content := *other.Content
		e.Content = &content
	}
	return e
}

// Apply writes the edits onto the post
func (e PostEdits) Apply(post *Post) {
	if e.Title != nil {
		post.Title = *e.Title
	}
	if e.Content != nil {
		post.Content = *e.Content
	}
}

// Post attribute names understood by GetEditedPostAttribute
const (
	PostAttrTitle   = "title"
	PostAttrContent = "content"
)

// ErrorType represents different categories of errors in the system
type ErrorType string

const (
	ErrTypeValidation ErrorType = "validation"
	ErrTypeNotFound   ErrorType = "not_found"
	ErrTypeConflict   ErrorType = "conflict"
	ErrTypeStorage    ErrorType = "storage"
	ErrTypeSystem     ErrorType = "system"
)

// NavError represents a structured error with type and context
type NavError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *NavError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error
func (e *NavError) Unwrap() error {
	return e.Cause
}

// NewNavError creates a new NavError with the given type and message
func NewNavError(errType ErrorType, message string) *NavError {
	return &NavError{
		Type:    errType,
		Message: message,
	}
}

// NewNavErrorWithCause creates a new NavError with an underlying cause
func NewNavErrorWithCause(errType ErrorType, message string, cause error) *NavError {
	return &NavError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsErrorType reports whether err wraps a NavError of the given type
func IsErrorType(err error, errType ErrorType) bool {
	var navErr *NavError
	return errors.As(err, &navErr) && navErr.Type == errType
}
