// Package tui implements the notification center: a terminal view of every
// notification whose buttons are still registered, with keys to open
// links, answer questions and dismiss.
package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flattr/adblockpluschrome/internal/buttons"
	"github.com/flattr/adblockpluschrome/internal/notification"
	"github.com/flattr/adblockpluschrome/internal/presenter"
)

// keyMap defines the notification center key bindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Yes     key.Binding
	No      key.Binding
	Dismiss key.Binding
	Next    key.Binding
	Quit    key.Binding
}

var defaultKeys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "down")),
	Open:    key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("o", "open links")),
	Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "answer yes")),
	No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "answer no")),
	Dismiss: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "dismiss")),
	Next:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "show next")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	activeStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	typeStyle     = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true).MarginTop(1)
	statusStyle   = lipgloss.NewStyle().Italic(true)
)

// Queue is the slice of the queue engine the center drives directly.
type Queue interface {
	ShowNext(currentURL string) error
}

// Model is the bubbletea model for the notification center.
type Model struct {
	presenter *presenter.Presenter
	queue     Queue
	keys      keyMap

	cursor  int
	entries []presenter.Retained
	status  string
}

// NewModel creates a notification center model.
func NewModel(p *presenter.Presenter, q Queue) *Model {
	m := &Model{presenter: p, queue: q, keys: defaultKeys}
	m.reload()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// reload refreshes the entry list from the presenter's registry.
func (m *Model) reload() {
	entries := m.presenter.RetainedEntries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Record.ID < entries[j].Record.ID
	})
	m.entries = entries
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the entry under the cursor, or nil.
func (m *Model) selected() *presenter.Retained {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return &m.entries[m.cursor]
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Open):
		if e := m.selected(); e != nil {
			m.presenter.OpenLinksFallback(e.Record.ID)
			m.status = "opened links of " + e.Record.ID
		}

	case key.Matches(keyMsg, m.keys.Yes):
		m.answer(true)

	case key.Matches(keyMsg, m.keys.No):
		m.answer(false)

	case key.Matches(keyMsg, m.keys.Dismiss):
		if e := m.selected(); e != nil {
			m.presenter.Dismiss(e.Record.ID, false)
			m.status = "dismissed " + e.Record.ID
			m.reload()
		}

	case key.Matches(keyMsg, m.keys.Next):
		if err := m.queue.ShowNext(""); err != nil {
			m.status = err.Error()
		}
		m.reload()
	}

	return m, nil
}

// answer forwards a yes/no choice for the selected question notification
// and dismisses it. Question buttons sit at fixed indices: 0 yes, 1 no.
func (m *Model) answer(approved bool) {
	e := m.selected()
	if e == nil || e.Record.Type != notification.TypeQuestion {
		return
	}
	index := 1
	if approved {
		index = 0
	}
	m.presenter.ButtonClicked(e.Record.ID, index)
	m.presenter.Dismiss(e.Record.ID, false)
	m.status = "answered " + e.Record.ID
	m.reload()
}

// View implements tea.Model.
func (m *Model) View() string {
	var b []byte
	b = append(b, titleStyle.Render("Notification center")...)
	b = append(b, '\n', '\n')

	if len(m.entries) == 0 {
		b = append(b, "No notifications."...)
		b = append(b, '\n')
	}

	active := m.presenter.Active()
	for i, e := range m.entries {
		line := typeStyle.Render("["+e.Record.Type.String()+"] ") + e.Texts.Title
		if active != nil && active.ID == e.Record.ID {
			line = activeStyle.Render(line + " (active)")
		}
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b = append(b, line...)
		b = append(b, '\n')
		if i == m.cursor {
			b = append(b, "    "+notification.StripMarkup(e.Texts.Message)...)
			b = append(b, '\n')
			if titles := buttons.Titles(e.Buttons); len(titles) > 0 {
				b = append(b, typeStyle.Render("    buttons: "+joinTitles(titles))...)
				b = append(b, '\n')
			}
		}
	}

	if m.status != "" {
		b = append(b, '\n')
		b = append(b, statusStyle.Render(m.status)...)
	}
	b = append(b, helpStyle.Render(helpLine(m.keys))...)
	return string(b)
}

func joinTitles(titles []string) string {
	out := ""
	for i, t := range titles {
		if i > 0 {
			out += " | "
		}
		out += t
	}
	return out
}

func helpLine(keys keyMap) string {
	bindings := []key.Binding{
		keys.Up, keys.Down, keys.Open, keys.Yes, keys.No,
		keys.Dismiss, keys.Next, keys.Quit,
	}
	out := "\n"
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		out += b.Help().Key + " " + b.Help().Desc
	}
	return out
}
