package editor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/logogen/internal/logger"
	"github.com/rileyhilliard/logogen/internal/strip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update should return editor.Model")
	}
	return m
}

func newTestModel(t *testing.T) (Model, *strip.Store) {
	t.Helper()
	store := strip.NewStore()
	m := NewModel(store, logger.Noop())
	t.Cleanup(m.Close)
	return m, store
}

func TestNewModel(t *testing.T) {
	m, store := newTestModel(t)

	assert.True(t, m.State().Equal(store.Snapshot()))
	k, i := m.Selected()
	assert.Equal(t, 0, k)
	assert.Equal(t, 0, i)
	assert.False(t, m.Editing())
}

func TestNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"))
	k, _ := m.Selected()
	assert.Equal(t, 2, k)

	// Can't move past the last strip
	m = press(t, m, runes("j"))
	k, _ = m.Selected()
	assert.Equal(t, 2, k)

	m = press(t, m, runes("l"), tea.KeyMsg{Type: tea.KeyRight})
	_, i := m.Selected()
	assert.Equal(t, 1, i, "default strips have two stops")

	m = press(t, m, runes("h"))
	_, i = m.Selected()
	assert.Equal(t, 0, i)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, runes("k"), runes("k"))
	k, _ = m.Selected()
	assert.Equal(t, 0, k)
}

func TestAddStop(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("+"))

	got := store.Snapshot().Strip(1)
	assert.Equal(t, strip.Strip{"#7A2259", "#FFFFFF", "#FB405A"}, got)
	assert.True(t, m.State().Equal(store.Snapshot()))

	k, i := m.Selected()
	assert.Equal(t, 1, k)
	assert.Equal(t, 1, i, "cursor moves to the new stop")

	status, isErr := m.Status()
	assert.False(t, isErr)
	assert.Contains(t, status, "Added stop 1 to strip 1")

	m = press(t, m, runes("a"))
	assert.Equal(t, 4, store.Snapshot().Strip(1).Len())
	_, i = m.Selected()
	assert.Equal(t, 2, i)
}

func TestRemoveStop(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, runes("a"), runes("x"))
	assert.Equal(t, strip.Strip{"#FB405A", "#7A2259"}, store.Snapshot().Strip(0))

	status, isErr := m.Status()
	assert.False(t, isErr)
	assert.Contains(t, status, "Removed stop 1")
	_, i := m.Selected()
	assert.Equal(t, 1, i)
}

func TestRemoveStop_BoundaryShowsError(t *testing.T) {
	m, store := newTestModel(t)
	before := store.Version()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDelete})

	assert.Equal(t, before, store.Version())
	status, isErr := m.Status()
	assert.True(t, isErr)
	assert.NotEmpty(t, status)
}

func TestEditColor(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, runes("l"), tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Editing())
	assert.Equal(t, "#7A2259", m.input.Value())

	// Keys go to the input while editing
	m.input.SetValue("")
	m = press(t, m, runes("#00ff00"))
	assert.Equal(t, "#00ff00", m.input.Value())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Editing())
	assert.Equal(t, "#00ff00", store.Snapshot().Strip(0)[1])
}

func TestEditColor_QTypesInsteadOfQuitting(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, runes("e"))
	m.input.SetValue("")
	m = press(t, m, runes("q"))

	assert.True(t, m.Editing())
	assert.Equal(t, "q", m.input.Value())
	assert.False(t, m.quitting)
}

func TestEditColor_Cancel(t *testing.T) {
	m, store := newTestModel(t)
	before := store.Snapshot()

	m = press(t, m, runes("e"))
	m.input.SetValue("#123456")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.Editing())
	assert.True(t, before.Equal(store.Snapshot()))
}

func TestEditColor_StrictRejectKeepsInputOpen(t *testing.T) {
	store := strip.NewStore(strip.WithPolicy(strip.StrictHex))
	m := NewModel(store, logger.Noop())
	t.Cleanup(m.Close)

	m = press(t, m, runes("e"))
	m.input.SetValue("not-a-color")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Editing())
	_, isErr := m.Status()
	assert.True(t, isErr)
	assert.Equal(t, "#FB405A", store.Snapshot().Strip(0)[0])
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, runes("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestStoreChangeFromElsewhere(t *testing.T) {
	m, store := newTestModel(t)

	// Select the last stop of strip 0, then shrink the strip behind the editor's back.
	_, err := store.AddStop(0)
	require.NoError(t, err)
	m = press(t, m, storeChangedMsg{}, runes("l"), runes("l"))
	_, i := m.Selected()
	assert.Equal(t, 2, i)

	_, err = store.RemoveStop(0, 1)
	require.NoError(t, err)

	cmd := m.waitForChange()
	msg := cmd()
	assert.IsType(t, storeChangedMsg{}, msg)

	m = press(t, m, msg)
	assert.True(t, m.State().Equal(store.Snapshot()))
	_, i = m.Selected()
	assert.Equal(t, 1, i, "cursor is clamped to the shorter strip")
}

func TestClose_ReleasesPendingWait(t *testing.T) {
	store := strip.NewStore()
	m := NewModel(store, logger.Noop())

	cmd := m.Init()
	require.NotNil(t, cmd)

	result := make(chan tea.Msg, 1)
	go func() { result <- cmd() }()

	m.Close()
	m.Close() // safe to repeat

	select {
	case msg := <-result:
		assert.Nil(t, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("waitForChange still blocked after Close")
	}
}

func TestWaitForChange_DeliversStoreEdit(t *testing.T) {
	m, store := newTestModel(t)

	_, err := store.AddStop(2)
	require.NoError(t, err)

	msg := m.Init()()
	assert.Equal(t, storeChangedMsg{}, msg)
}

func TestClose_StopsSignals(t *testing.T) {
	store := strip.NewStore()
	m := NewModel(store, logger.Noop())
	m.Close()

	_, err := store.AddStop(0)
	require.NoError(t, err)

	select {
	case <-m.changed:
		t.Fatal("closed model should not be signalled")
	default:
	}
}

func TestWindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Equal(t, 32, m.barWidth())

	m = press(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, maxBarWidth, m.barWidth())

	m = press(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	assert.Equal(t, minBarWidth, m.barWidth())
}
