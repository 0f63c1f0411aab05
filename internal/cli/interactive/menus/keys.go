package menus

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	New      key.Binding
	Focus    key.Binding
	Rename   key.Binding
	AddItem  key.Binding
	Remove   key.Binding
	Save     key.Binding
	CopySlug key.Binding
	EditSlug key.Binding
	Delete   key.Binding
	Retry    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit menu")),
		New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new menu")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Rename:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		AddItem:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		Remove:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove item")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s", "s"), key.WithHelp("s", "save")),
		CopySlug: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy slug")),
		EditSlug: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit slug")),
		Delete:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete menu")),
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// selectorHelp is shown while the menu list has focus
type selectorHelp keyMap

func (k selectorHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.New, k.Focus, k.Quit}
}

func (k selectorHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// editorHelp is shown while the menu editor has focus
type editorHelp keyMap

func (k editorHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Rename, k.AddItem, k.Remove, k.Save, k.CopySlug, k.EditSlug, k.Delete, k.Focus}
}

func (k editorHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
