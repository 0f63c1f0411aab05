package menus

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/zamm-dev/navedit/internal/cli/interactive"
	"github.com/zamm-dev/navedit/internal/cli/interactive/common"
	"github.com/zamm-dev/navedit/internal/i18n"
	"github.com/zamm-dev/navedit/internal/logging"
	"github.com/zamm-dev/navedit/internal/models"
	"github.com/zamm-dev/navedit/internal/selection"
)

// CreateLinkZone marks the "Create a new menu" link for mouse clicks
const CreateLinkZone = "create-menu-link"

type focusArea int

const (
	focusSelector focusArea = iota
	focusEditor
)

// Config wires the screen to its data
type Config struct {
	Source  Source
	Backend Backend
	Theme   common.Theme
	Zones   *zone.Manager // optional
}

// Model is the menus editor screen
type Model struct {
	config Config
	keys   keyMap
	state  selection.State

	loadErr error
	spinner spinner.Model
	help    help.Model

	selector    common.MenuSelector
	createPanel *CreatePanel
	editor      *MenuEditor
	focus       focusArea

	width  int
	height int
}

// New creates the menus editor screen
func New(config Config) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &Model{
		config:  config,
		keys:    defaultKeyMap(),
		state:   selection.New(),
		spinner: s,
		help:    help.New(),
		selector: common.NewMenuSelector(common.MenuSelectorConfig{
			Title: i18n.Localize(selectLabelMessage, nil),
			Theme: config.Theme,
			Zones: config.Zones,
		}),
		width:  80,
		height: 24,
	}
}

// State exposes the selection state
func (m *Model) State() selection.State {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.config.Backend.ResolveMenusCmd())
}

// SetSize sets the dimensions of the screen
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	selectorHeight := len(m.state.Menus()) + 4
	if limit := height / 3; selectorHeight > limit {
		selectorHeight = limit
	}
	if selectorHeight < 3 {
		selectorHeight = 3
	}
	m.selector.SetSize(width-4, selectorHeight)

	if m.createPanel != nil {
		m.createPanel.SetSize(width, height)
	}
	if m.editor != nil {
		m.editor.SetSize(width, height-selectorHeight-6)
	}
}

// Update handles tea messages and updates the screen
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.state.Mode() != selection.ModeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case interactive.MenusResolvedMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err
			return m, nil
		}
		m.loadErr = nil
		m.state = m.state.Observe(m.config.Source.HasLoadedMenus(), m.config.Source.GetMenus())
		return m, m.sync()

	case common.MenuSelectedMsg:
		next, err := m.state.SelectMenu(msg.MenuID)
		if err != nil {
			logging.Warn(logging.SubsystemMenus, "ignoring selection: %v", err)
			return m, nil
		}
		m.state = next
		m.focus = focusEditor
		return m, m.sync()

	case CreateMenuRequestedMsg:
		return m, m.config.Backend.CreateMenuCmd(msg.Name)

	case interactive.MenuCreatedMsg:
		m.state = m.state.MenuAdded(msg.Menu.Summary())
		m.editor = NewMenuEditor(msg.Menu.ID, m.config.Backend, m.config.Theme)
		m.editor.SetMenu(msg.Menu)
		m.focus = focusEditor
		return m, m.sync()

	case interactive.MenuCreateFailedMsg:
		if m.createPanel != nil {
			if models.IsErrorType(msg.Err, models.ErrTypeConflict) {
				m.createPanel.SetError(i18n.Localize(nameTakenMessage, nil))
			} else {
				m.createPanel.SetError(localizeError(createFailedMessage, msg.Err))
			}
		}
		return m, nil

	case CreatePanelCancelMsg:
		next, err := m.state.CancelCreation()
		if err != nil {
			return m, nil
		}
		m.state = next
		return m, m.sync()

	case interactive.MenuDeletedMsg:
		if msg.Err != nil {
			return m, m.updateEditor(msg)
		}
		return m, m.onDeleteMenu(msg.MenuID)

	case interactive.MenuSavedMsg:
		if msg.Err == nil && msg.Menu != nil {
			m.state = m.state.MenuRenamed(msg.Menu.Summary())
			m.selector.SetMenus(m.state.Menus(), m.selectedID())
		}
		return m, m.updateEditor(msg)

	case interactive.MenuLoadedMsg, interactive.SlugCopiedMsg,
		common.ConfirmationAcceptedMsg, common.ConfirmationCancelledMsg,
		common.SlugEditorCompleteMsg, common.SlugEditorCancelMsg:
		return m, m.updateEditor(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	if m.createPanel != nil {
		var cmd tea.Cmd
		m.createPanel, cmd = m.createPanel.Update(msg)
		return m, cmd
	}
	return m, nil
}

// onDeleteMenu is called once the child editor's menu is gone
func (m *Model) onDeleteMenu(menuID int) tea.Cmd {
	m.state = m.state.MenuDeleted(menuID)
	m.editor = nil
	m.focus = focusSelector
	return m.sync()
}

func (m *Model) selectedID() int {
	id, _ := m.state.SelectedID()
	return id
}

func (m *Model) updateEditor(msg tea.Msg) tea.Cmd {
	if m.editor == nil {
		return nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return cmd
}

func (m *Model) startCreating() tea.Cmd {
	m.state = m.state.StartCreatingNewMenu()
	return m.sync()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.state.Mode() {
	case selection.ModeLoading:
		if m.loadErr != nil && key.Matches(msg, m.keys.Retry) {
			m.loadErr = nil
			return tea.Batch(m.spinner.Tick, m.config.Backend.ResolveMenusCmd())
		}
		if key.Matches(msg, m.keys.Quit) {
			return tea.Quit
		}
		return nil

	case selection.ModeCreatingFirstMenu, selection.ModeCreatingAdditionalMenu:
		if m.createPanel == nil {
			return nil
		}
		var cmd tea.Cmd
		m.createPanel, cmd = m.createPanel.Update(msg)
		return cmd
	}

	if m.editor != nil && m.editor.Capturing() {
		return m.updateEditor(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.New):
		return m.startCreating()
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusSelector {
			m.focus = focusEditor
		} else {
			m.focus = focusSelector
		}
		return nil
	}

	if m.focus == focusEditor {
		if msg.Type == tea.KeyEsc {
			m.focus = focusSelector
			return nil
		}
		return m.updateEditor(msg)
	}

	var cmd tea.Cmd
	_, cmd = m.selector.Update(msg)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.state.HasSelectedMenu() {
		return nil
	}
	if m.config.Zones != nil && msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		if z := m.config.Zones.Get(CreateLinkZone); z != nil && z.InBounds(msg) {
			return m.startCreating()
		}
	}
	var cmd tea.Cmd
	_, cmd = m.selector.Update(msg)
	return cmd
}

// sync brings the child components in line with the selection state
func (m *Model) sync() tea.Cmd {
	menus := m.state.Menus()
	m.selector.SetMenus(menus, m.selectedID())

	if m.state.IsCreatingMenu() {
		m.editor = nil
		names := make([]string, len(menus))
		for i, menu := range menus {
			names[i] = menu.Name
		}
		if m.createPanel == nil {
			m.createPanel = NewCreatePanel(CreatePanelConfig{
				ExistingNames: names,
				CanCancel:     m.state.CanCancelCreation(),
				Theme:         m.config.Theme,
			})
			m.SetSize(m.width, m.height)
			return m.createPanel.Init()
		}
		m.createPanel.SetExistingNames(names)
		m.createPanel.SetCanCancel(m.state.CanCancelCreation())
		return nil
	}

	m.createPanel = nil
	if !m.state.HasSelectedMenu() {
		return nil
	}

	id := m.selectedID()
	if m.editor != nil && m.editor.MenuID() == id {
		m.SetSize(m.width, m.height)
		return nil
	}
	m.editor = NewMenuEditor(id, m.config.Backend, m.config.Theme)
	m.SetSize(m.width, m.height)
	return m.config.Backend.LoadMenuCmd(id)
}

// View renders the screen
func (m *Model) View() string {
	theme := m.config.Theme

	if m.state.Mode() == selection.ModeLoading {
		if m.loadErr != nil {
			return theme.ErrorStyle().Render(localizeError(loadFailedMessage, m.loadErr)) + "\n\n" +
				theme.MutedStyle().Render(i18n.Localize(retryHintMessage, nil))
		}
		return m.spinner.View() + " " + i18n.Localize(loadingMessage, nil)
	}

	var sections []string

	var card strings.Builder
	if m.state.IsCreatingMenu() {
		text := i18n.Localize(createAdditionalMessage, nil)
		if m.state.IsCreatingFirstMenu() {
			text = i18n.Localize(createFirstMessage, nil)
		}
		card.WriteString(text)
	}
	if m.state.HasSelectedMenu() {
		card.WriteString(m.selector.View() + "\n")
		link := theme.LinkStyle().Render(i18n.Localize(createLinkMessage, nil))
		if m.config.Zones != nil {
			link = m.config.Zones.Mark(CreateLinkZone, link)
		}
		card.WriteString(link)
	}
	sections = append(sections, theme.CardStyle(m.focus == focusSelector && m.state.HasSelectedMenu()).Render(card.String()))

	switch {
	case m.state.IsCreatingMenu() && m.createPanel != nil:
		sections = append(sections, m.createPanel.View())
	case m.state.HasSelectedMenu() && m.editor != nil:
		sections = append(sections, m.editor.View())
		if m.focus == focusEditor {
			sections = append(sections, m.help.View(editorHelp(m.keys)))
		} else {
			sections = append(sections, m.help.View(selectorHelp(m.keys)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
