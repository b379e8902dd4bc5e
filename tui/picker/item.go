package picker

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/seshconnect/pkg/sesh"
	"github.com/grovetools/seshconnect/tui/theme"
)

// sessionItem implements list.Item.
type sessionItem struct {
	session sesh.Session
	focus   bool
}

func (i sessionItem) Title() string       { return i.session.SessionName() }
func (i sessionItem) Description() string { return i.session.SessionPath() }
func (i sessionItem) FilterValue() string { return i.session.SessionName() }

func toItems(sessions []sesh.Session, focus func(string) bool) []list.Item {
	items := make([]list.Item, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, sessionItem{session: s, focus: focus(s.SessionName())})
	}
	return items
}

func sourceIcon(s sesh.Session) string {
	t := theme.DefaultTheme
	switch live := s.(type) {
	case sesh.LiveSession:
		if live.IsAttached() {
			return t.Attached.Render(theme.IconLive)
		}
		return t.Live.Render(theme.IconLive)
	case sesh.ProjectSession:
		return t.Project.Render(theme.IconProject)
	case sesh.ConfigSession:
		return t.Muted.Render(theme.IconConfig)
	default:
		return t.Muted.Render(theme.IconDirectory)
	}
}

// itemDelegate renders one session per line:
// icon, name, accessory, and a marker for focus-enabled sessions.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(sessionItem)
	if !ok {
		return
	}
	t := theme.DefaultTheme

	name := i.session.SessionName()
	if index == m.Index() {
		name = t.Selected.Render(name)
	}

	parts := []string{sourceIcon(i.session), name}
	if accessory := sesh.Accessory(i.session); accessory != "" {
		parts = append(parts, t.Muted.Render(accessory))
	}
	if state, ok := sesh.AttachmentState(i.session); ok && state == "Attached" {
		parts = append(parts, t.Attached.Render(strings.ToLower(state)))
	}
	if i.focus {
		parts = append(parts, t.Accent.Render(theme.IconFocus))
	}

	line := strings.Join(parts, " ")
	if width := m.Width(); width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	fmt.Fprint(w, line)
}
