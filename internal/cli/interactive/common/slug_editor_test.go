package common

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlugEditor(initial string) *SlugEditor {
	return NewSlugEditor(SlugEditorConfig{
		Title:       "Edit slug",
		MenuName:    "Main",
		InitialSlug: initial,
		Theme:       DefaultTheme(),
	})
}

func TestSlugEditorNormalisesOnEnter(t *testing.T) {
	s := newSlugEditor("")

	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Top Nav!")})
	assert.Contains(t, s.View(), "Saved as: top-nav")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, SlugEditorCompleteMsg{Slug: "top-nav"}, cmd())
}

func TestSlugEditorKeepsInitialSlug(t *testing.T) {
	s := newSlugEditor("main")

	assert.NotContains(t, s.View(), "Saved as:")
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, SlugEditorCompleteMsg{Slug: "main"}, cmd())
}

func TestSlugEditorEmptyAndCancel(t *testing.T) {
	s := newSlugEditor("")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, SlugEditorCancelMsg{}, cmd())
}
