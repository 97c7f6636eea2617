package editor

import (
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/logogen/internal/logger"
	"github.com/rileyhilliard/logogen/internal/strip"
)

// Model is the Bubble Tea model for the strip editor.
type Model struct {
	store   *strip.Store
	state   strip.State
	version uint64
	log     logger.Logger

	strip int // selected strip
	stop  int // selected stop within the strip

	editing bool
	input   textinput.Model
	help    help.Model

	showHelp  bool
	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool

	// changed is signalled by the store subscription; the model re-reads the
	// store when it fires so edits made elsewhere show up.
	changed     chan struct{}
	unsubscribe func()

	// done is closed by Close and releases a pending waitForChange.
	done      chan struct{}
	closeOnce *sync.Once
}

// storeChangedMsg reports that the store moved to a new state.
type storeChangedMsg struct{}

// NewModel creates an editor bound to store. Call Close when done to drop
// the store subscription.
func NewModel(store *strip.Store, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "#RRGGBB"
	input.CharLimit = 64
	input.Width = 24

	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(ColorTextSecondary)
	h.Styles.ShortDesc = h.Styles.ShortDesc.Foreground(ColorTextMuted)
	h.Styles.FullKey = h.Styles.FullKey.Foreground(ColorTextPrimary).Bold(true)
	h.Styles.FullDesc = h.Styles.FullDesc.Foreground(ColorTextSecondary)

	changed := make(chan struct{}, 1)
	unsubscribe := store.Subscribe(func(strip.State) {
		select {
		case changed <- struct{}{}:
		default:
			// A signal is already pending; the model reads the latest state anyway.
		}
	})

	return Model{
		store:       store,
		state:       store.Snapshot(),
		version:     store.Version(),
		log:         log,
		input:       input,
		help:        h,
		changed:     changed,
		unsubscribe: unsubscribe,
		done:        make(chan struct{}),
		closeOnce:   &sync.Once{},
	}
}

// Close drops the store subscription and ends any pending wait for changes.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if m.closeOnce != nil {
		m.closeOnce.Do(func() { close(m.done) })
	}
}

// Init starts listening for store changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case storeChangedMsg:
		m.state = m.store.Snapshot()
		m.version = m.store.Version()
		m.clampStop()
		return m, m.waitForChange()
	}

	return m, nil
}

// View renders the editor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderEditor()
}

// Selected returns the strip and stop under the cursor.
func (m Model) Selected() (stripIndex, stopIndex int) {
	return m.strip, m.stop
}

// State returns the state the editor is showing.
func (m Model) State() strip.State {
	return m.state
}

// Editing reports whether the color input is open.
func (m Model) Editing() bool {
	return m.editing
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// waitForChange blocks until the store signals a change or the model is closed.
func (m Model) waitForChange() tea.Cmd {
	changed, done := m.changed, m.done
	return func() tea.Msg {
		select {
		case <-changed:
			return storeChangedMsg{}
		case <-done:
			return nil
		}
	}
}

// clampStop keeps the stop cursor inside the selected strip.
func (m *Model) clampStop() {
	n := m.state.Strip(m.strip).Len()
	if m.stop > n-1 {
		m.stop = n - 1
	}
	if m.stop < 0 {
		m.stop = 0
	}
}
