package strip

import (
	"sync"
	"testing"
	"time"

	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorPolicy_Check(t *testing.T) {
	tests := []struct {
		name   string
		policy ColorPolicy
		color  string
		ok     bool
	}{
		{name: "permissive accepts garbage", policy: Permissive, color: "banana", ok: true},
		{name: "permissive accepts empty", policy: Permissive, color: "", ok: true},
		{name: "strict long hex", policy: StrictHex, color: "#FB405A", ok: true},
		{name: "strict lowercase", policy: StrictHex, color: "#fb405a", ok: true},
		{name: "strict short hex", policy: StrictHex, color: "#fff", ok: true},
		{name: "strict named color", policy: StrictHex, color: "red", ok: false},
		{name: "strict bad digit", policy: StrictHex, color: "#FB40ZZ", ok: false},
		{name: "strict missing hash", policy: StrictHex, color: "FB405A", ok: false},
		{name: "strict too long", policy: StrictHex, color: "#FB405A00", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Check(tt.color)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrColor))
			}
		})
	}
}

func TestColorPolicy_String(t *testing.T) {
	assert.Equal(t, "permissive", Permissive.String())
	assert.Equal(t, "strict", StrictHex.String())
}

func TestStore_Defaults(t *testing.T) {
	s := NewStore()

	assert.True(t, s.Snapshot().Equal(Default()))
	assert.Equal(t, uint64(0), s.Version())
	assert.Equal(t, Permissive, s.Policy())
}

func TestStore_WithState(t *testing.T) {
	seed, err := New([][]string{{"#000", "#111"}, {"#222", "#333"}, {"#444", "#555"}})
	require.NoError(t, err)

	s := NewStore(WithState(seed))
	assert.True(t, s.Snapshot().Equal(seed))
}

func TestStore_Scenarios(t *testing.T) {
	s := NewStore()

	st, err := s.AddStop(0)
	require.NoError(t, err)
	assert.Equal(t, Strip{"#FB405A", "#FFFFFF", "#7A2259"}, st.Strip(0))

	st, err = s.SetStopColor(1, 0, "#000000")
	require.NoError(t, err)
	assert.Equal(t, "#000000", st.Strip(1)[0])

	st, err = s.RemoveStop(0, 1)
	require.NoError(t, err)
	assert.Equal(t, Strip{"#FB405A", "#7A2259"}, st.Strip(0))

	assert.Equal(t, uint64(3), s.Version())
	assert.True(t, s.Snapshot().Equal(st))
}

func TestStore_SubscribersSeeEveryEdit(t *testing.T) {
	s := NewStore()

	var seen []State
	unsubscribe := s.Subscribe(func(st State) { seen = append(seen, st) })

	_, err := s.AddStop(2)
	require.NoError(t, err)
	_, err = s.SetStopColor(2, 1, "#ABCDEF")
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, 3, seen[0].Strip(2).Len())
	assert.Equal(t, "#ABCDEF", seen[1].Strip(2)[1])

	unsubscribe()
	_, err = s.AddStop(2)
	require.NoError(t, err)
	assert.Len(t, seen, 2)
}

func TestStore_SubscriberOrder(t *testing.T) {
	s := NewStore()

	var order []string
	s.Subscribe(func(State) { order = append(order, "first") })
	s.Subscribe(func(State) { order = append(order, "second") })

	_, err := s.AddStop(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestStore_FailedOpIsSilent(t *testing.T) {
	s := NewStore(WithPolicy(StrictHex))

	calls := 0
	s.Subscribe(func(State) { calls++ })

	_, err := s.RemoveStop(0, 0)
	assert.True(t, errors.IsCode(err, errors.ErrInvariant))

	_, err = s.AddStop(7)
	assert.True(t, errors.IsCode(err, errors.ErrIndex))

	st, err := s.SetStopColor(0, 0, "not-hex")
	assert.True(t, errors.IsCode(err, errors.ErrColor))
	assert.True(t, st.Equal(Default()))

	assert.Equal(t, 0, calls)
	assert.Equal(t, uint64(0), s.Version())
	assert.True(t, s.Snapshot().Equal(Default()))
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	_, err := s.AddStop(0)
	require.NoError(t, err)

	var got State
	s.Subscribe(func(st State) { got = st })

	s.Reset(Default())
	assert.True(t, got.Equal(Default()))
	assert.True(t, s.Snapshot().Equal(Default()))
	assert.Equal(t, uint64(2), s.Version())
}

func TestStore_SubscriberCanReadStore(t *testing.T) {
	s := NewStore()

	var version uint64
	s.Subscribe(func(State) { version = s.Version() })

	_, err := s.AddStop(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), version)
}

func TestStore_Logging(t *testing.T) {
	buf := logger.NewBufferLogger()
	s := NewStore(WithLogger(buf))

	_, err := s.AddStop(0)
	require.NoError(t, err)
	_, _ = s.RemoveStop(0, 0)

	msgs := buf.Snapshot()
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Message, "applied add:0")
	assert.Contains(t, msgs[1].Message, "rejected remove:0:0")
}

func TestStore_ConcurrentEdits(t *testing.T) {
	s := NewStore()

	var mu sync.Mutex
	notified := 0
	s.Subscribe(func(State) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := s.AddStop(k % Count)
				assert.NoError(t, err)
				_ = s.Snapshot()
			}
		}(w)
	}
	wg.Wait()

	total := 0
	for _, st := range s.Snapshot().Strips() {
		total += st.Len()
	}
	assert.Equal(t, Count*MinStops+workers*perWorker, total)
	assert.Equal(t, uint64(workers*perWorker), s.Version())
	assert.Equal(t, workers*perWorker, notified)
}

func TestStore_DeliveriesFollowApplyOrder(t *testing.T) {
	s := NewStore()

	entered := make(chan struct{})
	release := make(chan struct{})

	var mu sync.Mutex
	var delivered []State
	first := true
	s.Subscribe(func(st State) {
		mu.Lock()
		block := first
		first = false
		mu.Unlock()
		if block {
			close(entered)
			<-release
		}
		mu.Lock()
		delivered = append(delivered, st)
		mu.Unlock()
	})

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, err := s.AddStop(0)
		assert.NoError(t, err)
	}()
	<-entered

	// A second edit while the first is still being delivered waits its turn.
	secondDone := make(chan struct{})
	go func() {
		defer close(secondDone)
		_, err := s.AddStop(1)
		assert.NoError(t, err)
	}()
	select {
	case <-secondDone:
		t.Fatal("second edit finished while the first was still being delivered")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-firstDone
	<-secondDone

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, delivered, 2)
	assert.Len(t, delivered[0].Strip(1), 2, "first delivery is the add to strip 0 only")
	assert.True(t, delivered[1].Equal(s.Snapshot()), "last delivery is the current state")
}
