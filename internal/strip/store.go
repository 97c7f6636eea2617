package strip

import (
	"fmt"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/logger"
)

// ColorPolicy decides which color strings SetStopColor accepts.
type ColorPolicy int

const (
	// Permissive accepts any string and leaves interpretation to the SVG renderer.
	Permissive ColorPolicy = iota
	// StrictHex accepts only #RGB and #RRGGBB.
	StrictHex
)

// String returns a human-readable policy name.
func (p ColorPolicy) String() string {
	switch p {
	case StrictHex:
		return "strict"
	default:
		return "permissive"
	}
}

// Check returns a COLOR error if the policy rejects color.
func (p ColorPolicy) Check(color string) error {
	if p != StrictHex {
		return nil
	}
	if n := len(color); n != 4 && n != 7 {
		return badColor(color)
	}
	if _, err := colorful.Hex(color); err != nil {
		return errors.WrapWithCode(err, errors.ErrColor,
			fmt.Sprintf("%q isn't a hex color", color),
			"Use #RGB or #RRGGBB, e.g. #FB405A.")
	}
	return nil
}

func badColor(color string) error {
	return errors.New(errors.ErrColor,
		fmt.Sprintf("%q isn't a hex color", color),
		"Use #RGB or #RRGGBB, e.g. #FB405A.")
}

// Store holds the current State and notifies subscribers after every
// successful edit. It is safe for concurrent use.
type Store struct {
	// publishMu is held from the state swap until subscribers return, so
	// they see edits in the order they were applied.
	publishMu sync.Mutex

	mu      sync.RWMutex
	state   State
	version uint64
	policy  ColorPolicy
	log     logger.Logger

	subMu  sync.Mutex
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(State)
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithPolicy sets the color policy (default Permissive).
func WithPolicy(p ColorPolicy) StoreOption {
	return func(s *Store) { s.policy = p }
}

// WithState seeds the store with st instead of Default().
func WithState(st State) StoreOption {
	return func(s *Store) { s.state = st }
}

// WithLogger sets the logger used for edit tracing.
func WithLogger(l logger.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

// NewStore creates a store holding Default() unless WithState says otherwise.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		state: Default(),
		log:   logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Version counts successful edits since the store was created.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Policy returns the store's color policy.
func (s *Store) Policy() ColorPolicy { return s.policy }

// Apply validates and applies op. On failure the state is unchanged and no
// subscriber is called.
func (s *Store) Apply(op Op) (State, error) {
	if op.Kind == OpSet {
		if err := s.policy.Check(op.Color); err != nil {
			s.log.Debug("rejected %s: %s", op, errors.CodeOf(err))
			return s.Snapshot(), err
		}
	}

	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	next, err := op.Apply(s.state)
	if err != nil {
		cur := s.state
		s.mu.Unlock()
		s.log.Debug("rejected %s: %s", op, errors.CodeOf(err))
		return cur, err
	}
	s.state = next
	s.version++
	version := s.version
	s.mu.Unlock()

	s.log.Debug("applied %s (version %d)", op, version)
	s.notify(next)
	return next, nil
}

// AddStop adds a stop to strip k.
func (s *Store) AddStop(k int) (State, error) { return s.Apply(Add(k)) }

// RemoveStop removes interior stop i from strip k.
func (s *Store) RemoveStop(k, i int) (State, error) { return s.Apply(Remove(k, i)) }

// SetStopColor sets the color of stop i in strip k.
func (s *Store) SetStopColor(k, i int, color string) (State, error) {
	return s.Apply(Set(k, i, color))
}

// Reset replaces the whole state and notifies subscribers.
func (s *Store) Reset(st State) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	s.state = st
	s.version++
	s.mu.Unlock()
	s.notify(st)
}

// Subscribe registers fn to be called with the new state after each
// successful edit, in subscription order. Deliveries follow the order edits
// were applied. fn may read the store but must not edit it. The returned
// function removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(st State) {
	s.subMu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(st)
	}
}
