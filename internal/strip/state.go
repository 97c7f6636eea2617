// Package strip holds the logo's editing model: three strips, each an ordered
// run of color stops, and the edits a user can make to them.
//
// A State is an immutable value. Every edit returns a new State and leaves
// the receiver untouched, so a State can be handed to renderers, HTTP
// handlers and the terminal editor without copying or locking. The Store
// type wraps a State for callers that need a shared, observable current value.
package strip

import (
	"fmt"

	"github.com/rileyhilliard/logogen/internal/errors"
)

const (
	// Count is the number of strips in a logo. It never changes.
	Count = 3

	// MinStops is the fewest stops a strip may hold: a start and an end.
	MinStops = 2

	// NewStopColor is the color given to stops created by AddStop.
	NewStopColor = "#FFFFFF"
)

// Strip is an ordered sequence of color stops. Colors are kept exactly as
// entered; see ColorPolicy for optional validation.
type Strip []string

// Len returns the number of stops.
func (s Strip) Len() int { return len(s) }

// Offset returns the gradient position of stop i, i/(n-1).
func (s Strip) Offset(i int) float64 {
	if len(s) < MinStops {
		return 0
	}
	return float64(i) / float64(len(s)-1)
}

// Interior reports whether stop i may be removed.
func (s Strip) Interior(i int) bool {
	return i > 0 && i < len(s)-1
}

func (s Strip) clone() Strip {
	out := make(Strip, len(s))
	copy(out, s)
	return out
}

// State is the complete set of strips that determines the rendered logo.
type State struct {
	strips [Count]Strip
}

// Default returns the state a new editing session starts with.
func Default() State {
	return State{strips: [Count]Strip{
		{"#FB405A", "#7A2259"},
		{"#7A2259", "#FB405A"},
		{"#FB405A", "#7A2259"},
	}}
}

// New builds a State from raw stop lists, checking the strip count and the
// per-strip stop minimum.
func New(strips [][]string) (State, error) {
	if len(strips) != Count {
		return State{}, errors.New(errors.ErrInvariant,
			fmt.Sprintf("A logo needs exactly %d strips, got %d", Count, len(strips)),
			"List three strips, one per diagonal line.")
	}

	var st State
	for k, stops := range strips {
		if len(stops) < MinStops {
			return State{}, errors.New(errors.ErrInvariant,
				fmt.Sprintf("Strip %d has %d stop(s), needs at least %d", k, len(stops), MinStops),
				"Give every strip a start and an end color.")
		}
		st.strips[k] = Strip(stops).clone()
	}
	return st, nil
}

// Strip returns a copy of strip k, or nil if k is out of range.
func (s State) Strip(k int) Strip {
	if k < 0 || k >= Count {
		return nil
	}
	return s.strips[k].clone()
}

// Strips returns copies of all strips in order.
func (s State) Strips() []Strip {
	out := make([]Strip, Count)
	for k := range s.strips {
		out[k] = s.strips[k].clone()
	}
	return out
}

// Raw returns the stops as plain string slices, e.g. for JSON or YAML.
func (s State) Raw() [][]string {
	out := make([][]string, Count)
	for k := range s.strips {
		out[k] = []string(s.strips[k].clone())
	}
	return out
}

// Equal reports whether both states hold the same stops in the same order.
func (s State) Equal(o State) bool {
	for k := range s.strips {
		if len(s.strips[k]) != len(o.strips[k]) {
			return false
		}
		for i := range s.strips[k] {
			if s.strips[k][i] != o.strips[k][i] {
				return false
			}
		}
	}
	return true
}

// AddStop inserts a NewStopColor stop just before the last stop of strip k.
func (s State) AddStop(k int) (State, error) {
	if err := s.checkStrip(k); err != nil {
		return s, err
	}

	old := s.strips[k]
	next := make(Strip, 0, len(old)+1)
	next = append(next, old[:len(old)-1]...)
	next = append(next, NewStopColor, old[len(old)-1])

	s.strips[k] = next
	return s, nil
}

// RemoveStop deletes stop i from strip k. Only interior stops can go; the
// first and last stop anchor the gradient.
func (s State) RemoveStop(k, i int) (State, error) {
	if err := s.checkStop(k, i); err != nil {
		return s, err
	}

	old := s.strips[k]
	if !old.Interior(i) || len(old) <= MinStops {
		which := "first"
		if i == len(old)-1 {
			which = "last"
		}
		return s, errors.New(errors.ErrInvariant,
			fmt.Sprintf("Can't remove the %s stop of strip %d", which, k),
			"Only stops between the start and end can be removed.")
	}

	next := make(Strip, 0, len(old)-1)
	next = append(next, old[:i]...)
	next = append(next, old[i+1:]...)

	s.strips[k] = next
	return s, nil
}

// SetStopColor replaces the color of stop i in strip k.
func (s State) SetStopColor(k, i int, color string) (State, error) {
	if err := s.checkStop(k, i); err != nil {
		return s, err
	}

	next := s.strips[k].clone()
	next[i] = color

	s.strips[k] = next
	return s, nil
}

func (s State) checkStrip(k int) error {
	if k < 0 || k >= Count {
		return errors.New(errors.ErrIndex,
			fmt.Sprintf("Strip %d doesn't exist", k),
			fmt.Sprintf("Strips are numbered 0 to %d.", Count-1))
	}
	return nil
}

func (s State) checkStop(k, i int) error {
	if err := s.checkStrip(k); err != nil {
		return err
	}
	if n := len(s.strips[k]); i < 0 || i >= n {
		return errors.New(errors.ErrIndex,
			fmt.Sprintf("Stop %d doesn't exist in strip %d", i, k),
			fmt.Sprintf("Strip %d has stops 0 to %d.", k, n-1))
	}
	return nil
}
