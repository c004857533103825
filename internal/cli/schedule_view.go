package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// scheduleView is a small bubbletea program that shows a rendered schedule
// in a scrollable viewport, for results too long for one screen. Grounded
// on the teacher's appModel/outputVP pairing, narrowed to one static
// document instead of a navigable view stack.
type scheduleView struct {
	vp   viewport.Model
	keys scheduleKeyMap
}

type scheduleKeyMap struct {
	Quit key.Binding
}

func defaultScheduleKeyMap() scheduleKeyMap {
	return scheduleKeyMap{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func newScheduleView(rendered string, width, height int) scheduleView {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	vp.SetContent(rendered)
	return scheduleView{vp: vp, keys: defaultScheduleKeyMap()}
}

func (m scheduleView) Init() tea.Cmd { return nil }

func (m scheduleView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m scheduleView) View() string { return m.vp.View() }

// runScheduleView blocks until the user quits the viewport.
func runScheduleView(rendered string) error {
	_, err := tea.NewProgram(newScheduleView(rendered, 80, 24), tea.WithAltScreen()).Run()
	return err
}
