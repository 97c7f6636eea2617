// Package render turns a strip.State into the logo's SVG document.
//
// Rendering happens in two steps. Project is a pure function from state to
// a Logo value that describes every element and attribute; WriteSVG encodes
// a Logo. Tests and the terminal preview work with the Logo value directly.
package render

import (
	"fmt"

	"github.com/rileyhilliard/logogen/internal/strip"
)

// Fixed canvas parameters.
const (
	Size              = 512
	Background        = "#2a2a2a"
	StrokeWidth       = 15
	StrokeLinecap     = "round"
	GradientTransform = "rotate(-45) translate(-0.5)"
	gradientPrefix    = "strip"
)

// Stop is one gradient stop.
type Stop struct {
	Offset float64
	Color  string
}

// Gradient is a linear gradient definition for one strip.
type Gradient struct {
	ID        string
	Transform string
	Stops     []Stop
}

// Segment is one diagonal line stroked with a gradient.
type Segment struct {
	X1, Y1, X2, Y2 int
	DX, DY         int // translation, zero for none
	Gradient       string
}

// Transform returns the segment's transform attribute, or "" for none.
func (s Segment) Transform() string {
	if s.DX == 0 && s.DY == 0 {
		return ""
	}
	return fmt.Sprintf("translate(%d,%d)", s.DX, s.DY)
}

// Stroke returns the paint reference for the segment's gradient.
func (s Segment) Stroke() string {
	return "url(#" + s.Gradient + ")"
}

// Logo describes the complete SVG document.
type Logo struct {
	Width, Height int
	Background    string
	Gradients     []Gradient
	Segments      []Segment
}

// segments maps strip k to its line: strip 0 is the upper-left line, strip 1
// the long middle line, strip 2 the lower-right line.
var segments = [strip.Count]Segment{
	{X1: 181, Y1: 331, X2: 331, Y2: 181, DX: -25, DY: -25},
	{X1: 161, Y1: 351, X2: 351, Y2: 161},
	{X1: 181, Y1: 331, X2: 331, Y2: 181, DX: 25, DY: 25},
}

// GradientID returns the element id of strip k's gradient.
func GradientID(k int) string {
	return fmt.Sprintf("%s%d", gradientPrefix, k)
}

// Offsets returns the evenly spaced offsets of an n-stop gradient.
func Offsets(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{0}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// Project derives the Logo for st. It has no side effects.
func Project(st strip.State) Logo {
	logo := Logo{
		Width:      Size,
		Height:     Size,
		Background: Background,
		Gradients:  make([]Gradient, 0, strip.Count),
		Segments:   make([]Segment, 0, strip.Count),
	}

	for k, s := range st.Strips() {
		g := Gradient{
			ID:        GradientID(k),
			Transform: GradientTransform,
			Stops:     make([]Stop, s.Len()),
		}
		for i, off := range Offsets(s.Len()) {
			g.Stops[i] = Stop{Offset: off, Color: s[i]}
		}
		logo.Gradients = append(logo.Gradients, g)

		seg := segments[k]
		seg.Gradient = g.ID
		logo.Segments = append(logo.Segments, seg)
	}

	return logo
}
