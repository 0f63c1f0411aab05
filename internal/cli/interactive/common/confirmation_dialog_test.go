package common

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationDialog(t *testing.T) {
	d := NewConfirmationDialog(ConfirmationDialogConfig{
		Title:    "Delete menu",
		Message:  "Really?",
		TargetID: 7,
		Theme:    DefaultTheme(),
	})

	tests := []struct {
		name string
		key  tea.KeyMsg
		want tea.Msg
	}{
		{"y accepts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, ConfirmationAcceptedMsg{TargetID: 7}},
		{"n cancels", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, ConfirmationCancelledMsg{}},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, ConfirmationCancelledMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := d.Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)

	view := d.View()
	assert.Contains(t, view, "Delete menu")
	assert.Contains(t, view, "Really?")
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#8AB4F8"), ThemeFor("dark").Accent)
	assert.Equal(t, lipgloss.Color("#0B57D0"), ThemeFor("light").Accent)
	assert.IsType(t, lipgloss.AdaptiveColor{}, DefaultTheme().Accent)
}
