// Package picker is an interactive session list on top of the workflow
// controller. Connecting or closing runs in the background; the list takes
// no input until it finishes.
package picker

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/seshconnect/pkg/workflow"
	"github.com/grovetools/seshconnect/tui/theme"
)

// Messages
type loadedMsg struct{ err error }

type connectedMsg struct {
	name string
	err  error
}

type closedMsg struct {
	name   string
	closed bool
	err    error
}

// Model is the bubbletea model of the picker.
type Model struct {
	ctx       context.Context
	ctrl      *workflow.Controller
	focus     workflow.FocusChecker
	inbox     *inbox
	approvals *approvals

	list    list.Model
	spinner spinner.Model
	keys    KeyMap

	busy       bool
	confirming string // session awaiting close confirmation
	status     *workflow.Notification
	width      int
	height     int

	// Connected is the session the user connected to, if any.
	Connected string
}

// New creates a picker. deps.Notifier and deps.Confirmer are replaced by the
// picker's own. Workflows keep ctx's values but not its cancellation: a
// subprocess already started runs to completion even if the picker exits.
func New(ctx context.Context, deps workflow.Dependencies) *Model {
	m := &Model{
		ctx:       context.WithoutCancel(ctx),
		focus:     deps.Focus,
		inbox:     &inbox{},
		approvals: &approvals{},
		keys:      DefaultKeyMap,
		busy:      true,
	}

	deps.Notifier = m.inbox
	deps.Confirmer = m.approvals
	m.ctrl = workflow.New(deps)

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "sesh sessions"
	l.SetShowStatusBar(false)
	l.Styles.Title = theme.DefaultTheme.Header
	l.AdditionalShortHelpKeys = m.keys.ShortHelp
	m.list = l

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.DefaultTheme.Info
	m.spinner = s

	return m
}

// WithKeyMap replaces the picker's keybindings.
func (m *Model) WithKeyMap(keys KeyMap) *Model {
	m.keys = keys
	m.list.AdditionalShortHelpKeys = m.keys.ShortHelp
	return m
}

// Controller exposes the workflow controller driving the picker.
func (m *Model) Controller() *workflow.Controller {
	return m.ctrl
}

// Init is the first command that will be executed.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: m.ctrl.Load(m.ctx)}
	}
}

func (m *Model) connect(name string) tea.Cmd {
	return func() tea.Msg {
		return connectedMsg{name: name, err: m.ctrl.Connect(m.ctx, name)}
	}
}

func (m *Model) close(name string) tea.Cmd {
	return func() tea.Msg {
		closed, err := m.ctrl.Close(m.ctx, name)
		return closedMsg{name: name, closed: closed, err: err}
	}
}

func (m *Model) selected() (sessionItem, bool) {
	item, ok := m.list.SelectedItem().(sessionItem)
	return item, ok
}

func (m *Model) syncItems() tea.Cmd {
	focus := func(string) bool { return false }
	if m.focus != nil {
		focus = m.focus.IsFocusEnabled
	}
	return m.list.SetItems(toItems(m.ctrl.Sessions(), focus))
}

// finish ends a background workflow and shows its last notification.
func (m *Model) finish() {
	m.busy = false
	if notes := m.inbox.drain(); len(notes) > 0 {
		last := notes[len(notes)-1]
		m.status = &last
	}
}

// Update handles messages and updates the model accordingly.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.finish()
		return m, m.syncItems()

	case connectedMsg:
		m.finish()
		if msg.err == nil {
			m.Connected = msg.name
			return m, tea.Quit
		}
		return m, nil

	case closedMsg:
		m.finish()
		if msg.closed {
			return m, m.syncItems()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		if m.confirming != "" {
			return m.updateConfirm(msg)
		}
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Connect):
			if item, ok := m.selected(); ok {
				m.busy = true
				m.status = nil
				return m, m.connect(item.session.SessionName())
			}
			return m, nil

		case key.Matches(msg, m.keys.Close):
			if item, ok := m.selected(); ok {
				m.confirming = item.session.SessionName()
				m.status = nil
			}
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.busy = true
			m.status = nil
			return m, m.load()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := m.confirming
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.confirming = ""
		m.approvals.approve(workflow.CloseConfirmation(name).Message)
		m.busy = true
		return m, m.close(name)
	case key.Matches(msg, m.keys.No):
		m.confirming = ""
	}
	return m, nil
}

// View renders the list with a one-line status footer.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *Model) footer() string {
	t := theme.DefaultTheme
	switch {
	case m.confirming != "":
		c := workflow.CloseConfirmation(m.confirming)
		return t.Warning.Render(c.Title) + " " + c.Message + " " +
			t.Muted.Render("[y] "+c.PrimaryAction+"  [n] "+c.DismissAction)
	case m.busy:
		return m.spinner.View() + " " + t.Muted.Render("working…")
	case m.status != nil:
		if m.status.Style == workflow.StyleSuccess {
			return t.Success.Render(theme.IconSuccess+" "+m.status.Title) + " " + m.status.Message
		}
		return t.Error.Render(theme.IconError+" "+m.status.Title) + " " + m.status.Message
	}
	return ""
}
