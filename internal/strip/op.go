package strip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rileyhilliard/logogen/internal/errors"
)

// OpKind identifies the edit an Op performs.
type OpKind int

const (
	OpAdd OpKind = iota
	OpRemove
	OpSet
)

// String returns the keyword used in the textual op form.
func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpSet:
		return "set"
	default:
		return "unknown"
	}
}

// Op is a single edit. Front ends translate key presses, form posts and
// command-line flags into Ops so every edit goes through the same path.
type Op struct {
	Kind  OpKind
	Strip int
	Stop  int    // unused by OpAdd
	Color string // OpSet only
}

// Add returns an op that adds a stop to strip k.
func Add(k int) Op { return Op{Kind: OpAdd, Strip: k} }

// Remove returns an op that removes stop i from strip k.
func Remove(k, i int) Op { return Op{Kind: OpRemove, Strip: k, Stop: i} }

// Set returns an op that sets the color of stop i in strip k.
func Set(k, i int, color string) Op { return Op{Kind: OpSet, Strip: k, Stop: i, Color: color} }

// Apply runs the op against s.
func (o Op) Apply(s State) (State, error) {
	switch o.Kind {
	case OpAdd:
		return s.AddStop(o.Strip)
	case OpRemove:
		return s.RemoveStop(o.Strip, o.Stop)
	case OpSet:
		return s.SetStopColor(o.Strip, o.Stop, o.Color)
	default:
		return s, errors.New(errors.ErrOp,
			fmt.Sprintf("Unknown edit kind %d", int(o.Kind)), "")
	}
}

// String renders the op in the form ParseOp accepts.
func (o Op) String() string {
	switch o.Kind {
	case OpAdd:
		return fmt.Sprintf("add:%d", o.Strip)
	case OpRemove:
		return fmt.Sprintf("remove:%d:%d", o.Strip, o.Stop)
	case OpSet:
		return fmt.Sprintf("set:%d:%d:%s", o.Strip, o.Stop, o.Color)
	default:
		return o.Kind.String()
	}
}

const opSyntax = "Use add:<strip>, remove:<strip>:<stop> or set:<strip>:<stop>:<color>."

// ParseOp parses "add:K", "remove:K:I" or "set:K:I:COLOR".
// Index bounds are not checked here; Apply does that against a real state.
func ParseOp(s string) (Op, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 4)

	bad := func(why string) (Op, error) {
		return Op{}, errors.New(errors.ErrOp,
			fmt.Sprintf("Can't parse edit %q: %s", s, why), opSyntax)
	}

	var want int
	var kind OpKind
	switch parts[0] {
	case "add":
		kind, want = OpAdd, 2
	case "remove", "rm":
		kind, want = OpRemove, 3
	case "set":
		kind, want = OpSet, 4
	default:
		return bad("unknown edit " + strconv.Quote(parts[0]))
	}
	if len(parts) != want {
		return bad(fmt.Sprintf("expected %d fields, got %d", want, len(parts)))
	}

	op := Op{Kind: kind}
	var err error
	if op.Strip, err = strconv.Atoi(parts[1]); err != nil {
		return bad("strip must be a number")
	}
	if want >= 3 {
		if op.Stop, err = strconv.Atoi(parts[2]); err != nil {
			return bad("stop must be a number")
		}
	}
	if kind == OpSet {
		op.Color = parts[3]
		if op.Color == "" {
			return bad("color is empty")
		}
	}
	return op, nil
}

// ParseOps parses each element with ParseOp, stopping at the first error.
func ParseOps(specs []string) ([]Op, error) {
	ops := make([]Op, 0, len(specs))
	for _, spec := range specs {
		op, err := ParseOp(spec)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// ApplyAll applies ops in order, returning the first failure.
func ApplyAll(s State, ops []Op) (State, error) {
	for _, op := range ops {
		next, err := op.Apply(s)
		if err != nil {
			return s, err
		}
		s = next
	}
	return s, nil
}
