package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/ui"
)

// keyMap defines the editor's key bindings. It satisfies help.KeyMap.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Add    key.Binding
	Remove key.Binding
	Edit   key.Binding
	Commit key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous strip"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next strip"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous stop"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next stop"),
	),
	Add: key.NewBinding(
		key.WithKeys("+", "a"),
		key.WithHelp("+/a", "add stop"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x/del", "remove stop"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter/e", "edit color"),
	),
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply color"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Edit, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay, one column per row.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Add, k.Remove, k.Edit, k.Cancel},
		{k.Help, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input and returns the command to run.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	// Help toggle takes priority
	if key.Matches(msg, keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key.Matches(msg, keys.Cancel) {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.strip > 0 {
			m.strip--
			m.clampStop()
		}
		return true, nil

	case key.Matches(msg, keys.Down):
		if m.strip < len(m.state.Strips())-1 {
			m.strip++
			m.clampStop()
		}
		return true, nil

	case key.Matches(msg, keys.Left):
		if m.stop > 0 {
			m.stop--
		}
		return true, nil

	case key.Matches(msg, keys.Right):
		if m.stop < m.state.Strip(m.strip).Len()-1 {
			m.stop++
		}
		return true, nil

	case key.Matches(msg, keys.Add):
		m.addStop()
		return true, nil

	case key.Matches(msg, keys.Remove):
		m.removeStop()
		return true, nil

	case key.Matches(msg, keys.Edit):
		return true, m.startEdit()
	}

	return false, nil
}

// handleEditKey routes keys while the color input is open. Everything except
// commit, cancel and ctrl+c goes to the text input.
func (m *Model) handleEditKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.Cancel):
		m.stopEdit()
		m.setStatus("Edit cancelled", nil)
		return true, nil

	case key.Matches(msg, keys.Commit):
		m.commitEdit()
		return true, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return true, cmd
}

func (m *Model) addStop() {
	st, err := m.store.AddStop(m.strip)
	m.state = st
	m.version = m.store.Version()
	if err != nil {
		m.setStatus("", err)
		return
	}
	// New stops go just before the last one.
	m.stop = st.Strip(m.strip).Len() - 2
	m.setStatus(fmt.Sprintf("Added stop %d to strip %d", m.stop, m.strip), nil)
}

func (m *Model) removeStop() {
	removed := m.stop
	st, err := m.store.RemoveStop(m.strip, removed)
	m.state = st
	m.version = m.store.Version()
	if err != nil {
		m.setStatus("", err)
		return
	}
	m.clampStop()
	m.setStatus(fmt.Sprintf("Removed stop %d from strip %d", removed, m.strip), nil)
}

func (m *Model) startEdit() tea.Cmd {
	s := m.state.Strip(m.strip)
	if m.stop >= s.Len() {
		return nil
	}
	m.editing = true
	m.input.SetValue(s[m.stop])
	m.input.CursorEnd()
	m.setStatus("", nil)
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) commitEdit() {
	color := strings.TrimSpace(m.input.Value())
	st, err := m.store.SetStopColor(m.strip, m.stop, color)
	m.state = st
	m.version = m.store.Version()
	if err != nil {
		// Keep the input open so the value can be fixed.
		m.setStatus("", err)
		return
	}
	m.stopEdit()
	m.setStatus(fmt.Sprintf("Strip %d stop %d is now %s", m.strip, m.stop, color), nil)
}

func (m *Model) stopEdit() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

// setStatus sets the status line. A non-nil err wins over msg.
func (m *Model) setStatus(msg string, err error) {
	if err != nil {
		m.status = ui.SymbolFail + " " + errors.MessageOf(err)
		m.statusErr = true
		m.log.Debug("editor: %s", errors.MessageOf(err))
		return
	}
	m.statusErr = false
	if msg == "" {
		m.status = ""
		return
	}
	m.status = ui.SymbolSuccess + " " + msg
}
