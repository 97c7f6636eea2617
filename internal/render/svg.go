package render

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/strip"
	"github.com/tdewolff/minify/v2"
	minsvg "github.com/tdewolff/minify/v2/svg"
)

// MediaType is the content type of rendered documents.
const MediaType = "image/svg+xml"

// offsetPrecision is the number of decimals kept for stop offsets.
const offsetPrecision = 6

// Options controls encoding.
type Options struct {
	// Minify passes the document through the SVG minifier.
	Minify bool
	// Fragment drops the XML declaration so the document can be inlined in HTML.
	Fragment bool
}

var minifier = func() *minify.M {
	m := minify.New()
	m.AddFunc(MediaType, minsvg.Minify)
	return m
}()

// SVG renders st to a complete document.
func SVG(st strip.State, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, Project(st), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSVG encodes logo to w.
func WriteSVG(w io.Writer, logo Logo, opts Options) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	canvas.Startview(logo.Width, logo.Height, 0, 0, logo.Width, logo.Height)
	canvas.Def()
	for _, g := range logo.Gradients {
		writeGradient(canvas.Writer, g)
	}
	canvas.DefEnd()

	canvas.Rect(0, 0, logo.Width, logo.Height, attr("fill", logo.Background))
	for _, seg := range logo.Segments {
		canvas.Line(seg.X1, seg.Y1, seg.X2, seg.Y2, segmentAttrs(seg)...)
	}
	canvas.End()

	out := buf.Bytes()
	if opts.Fragment {
		if i := bytes.Index(out, []byte("<svg")); i > 0 {
			out = out[i:]
		}
	}
	if opts.Minify {
		small, err := minifier.Bytes(MediaType, out)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrRender,
				"Failed to minify SVG",
				"Render without --minify to see the raw document.")
		}
		out = small
	}

	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, "Failed to write SVG")
	}
	return nil
}

// writeGradient emits a <linearGradient> directly; svgo's own gradient
// helper only takes whole-percent offsets and has no transform attribute.
func writeGradient(w io.Writer, g Gradient) {
	fmt.Fprintf(w, "<linearGradient id=\"%s\" gradientTransform=\"%s\">\n", esc(g.ID), esc(g.Transform))
	for _, stop := range g.Stops {
		fmt.Fprintf(w, "<stop offset=\"%s\" stop-color=\"%s\"/>\n", formatOffset(stop.Offset), esc(stop.Color))
	}
	fmt.Fprintf(w, "</linearGradient>\n")
}

func segmentAttrs(seg Segment) []string {
	attrs := []string{
		attr("stroke", seg.Stroke()),
		attr("stroke-width", strconv.Itoa(StrokeWidth)),
		attr("stroke-linecap", StrokeLinecap),
	}
	if tr := seg.Transform(); tr != "" {
		attrs = append(attrs, attr("transform", tr))
	}
	return attrs
}

// attr formats name="value" so svgo writes it as a plain attribute rather
// than folding it into a style.
func attr(name, value string) string {
	return name + `="` + esc(value) + `"`
}

func esc(s string) string {
	return html.EscapeString(s)
}

// formatOffset prints an offset in [0,1] with trailing zeros trimmed.
func formatOffset(f float64) string {
	switch f {
	case 0:
		return "0"
	case 1:
		return "1"
	}
	s := strconv.FormatFloat(f, 'f', offsetPrecision, 64)
	return string(minify.Decimal([]byte(s), offsetPrecision))
}
