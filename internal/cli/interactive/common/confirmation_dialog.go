package common

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/zamm-dev/navedit/internal/i18n"
)

var confirmHintMessage = &i18n.Message{
	ID:    "common_confirm_hint",
	Other: "Press 'y' to confirm, 'n' or Esc to cancel",
}

type ConfirmationDialogConfig struct {
	Title    string
	Message  string
	TargetID int // ID of the target being confirmed
	Theme    Theme
}

type ConfirmationAcceptedMsg struct {
	TargetID int
}

type ConfirmationCancelledMsg struct{}

// ConfirmationDialog asks a yes/no question. It is drawn on top of the
// screen it belongs to with Overlay.
type ConfirmationDialog struct {
	config ConfirmationDialogConfig
}

// NewConfirmationDialog creates a new confirmation dialog component
func NewConfirmationDialog(config ConfirmationDialogConfig) *ConfirmationDialog {
	return &ConfirmationDialog{
		config: config,
	}
}

// Init initializes the confirmation dialog
func (d *ConfirmationDialog) Init() tea.Cmd {
	return nil
}

// Update handles tea messages and updates the component
func (d *ConfirmationDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n", "N":
			return d, func() tea.Msg { return ConfirmationCancelledMsg{} }
		case "y", "Y":
			target := d.config.TargetID
			return d, func() tea.Msg {
				return ConfirmationAcceptedMsg{TargetID: target}
			}
		}
	}
	return d, nil
}

// View renders the confirmation dialog
func (d *ConfirmationDialog) View() string {
	var sb strings.Builder

	sb.WriteString(d.config.Theme.ErrorStyle().Bold(true).Render(d.config.Title) + "\n\n")
	sb.WriteString(d.config.Message + "\n\n")
	sb.WriteString(d.config.Theme.MutedStyle().Render(i18n.Localize(confirmHintMessage, nil)))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(d.config.Theme.Error).
		Padding(1, 2).
		Width(50).
		Render(sb.String())
}

// staticView lets a rendered string act as an overlay background
type staticView string

func (v staticView) Init() tea.Cmd                       { return nil }
func (v staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v staticView) View() string                        { return string(v) }

// Overlay centres foreground on top of the already rendered background
func Overlay(foreground tea.Model, background string) string {
	return overlay.New(
		foreground,
		staticView(background),
		overlay.Center,
		overlay.Center,
		0,
		0,
	).View()
}
