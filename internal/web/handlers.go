package web

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	lgerrors "github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/render"
	"github.com/rileyhilliard/logogen/internal/strip"
)

//go:embed templates/page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// pageData is what the editor page template renders.
type pageData struct {
	SVG    template.HTML
	Strips []stripView
}

type stripView struct {
	Index int
	Stops []stopView
}

type stopView struct {
	Index     int
	Color     string // normalized for <input type=color>
	Removable bool
}

// StripsResponse is the JSON body of /api/strips and of mutations that ask
// for JSON.
type StripsResponse struct {
	Version uint64     `json:"version"`
	Strips  [][]string `json:"strips"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a rejected request.
type ErrorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// handlePage serves the editor page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	st := s.store.Snapshot()

	frag, err := s.fragment(st)
	if err != nil {
		s.log.Error("render page: %v", err)
		http.Error(w, "Failed to render logo", http.StatusInternalServerError)
		return
	}

	data := pageData{SVG: template.HTML(frag)}
	for k, stops := range st.Strips() {
		sv := stripView{Index: k}
		for i, c := range stops {
			sv.Stops = append(sv.Stops, stopView{
				Index:     i,
				Color:     inputColor(c),
				Removable: stops.Interior(i),
			})
		}
		data.Strips = append(data.Strips, sv)
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		s.log.Error("execute page template: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleLogo serves the standalone SVG document.
func (s *Server) handleLogo(w http.ResponseWriter, r *http.Request) {
	out, err := render.SVG(s.store.Snapshot(), s.render)
	if err != nil {
		s.log.Error("render logo: %v", err)
		http.Error(w, "Failed to render logo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", render.MediaType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// handleStrips serves the current strips as JSON.
func (s *Server) handleStrips(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.store.Snapshot())
}

func (s *Server) handleAddStop(w http.ResponseWriter, r *http.Request) {
	k, ok := pathIndex(w, r, "strip")
	if !ok {
		return
	}
	st, err := s.store.AddStop(k)
	s.respond(w, r, st, err)
}

func (s *Server) handleSetColor(w http.ResponseWriter, r *http.Request) {
	k, ok := pathIndex(w, r, "strip")
	if !ok {
		return
	}
	i, ok := pathIndex(w, r, "stop")
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	if !r.Form.Has("color") {
		http.Error(w, "Missing form field 'color'", http.StatusBadRequest)
		return
	}
	st, err := s.store.SetStopColor(k, i, strings.TrimSpace(r.Form.Get("color")))
	s.respond(w, r, st, err)
}

func (s *Server) handleRemoveStop(w http.ResponseWriter, r *http.Request) {
	k, ok := pathIndex(w, r, "strip")
	if !ok {
		return
	}
	i, ok := pathIndex(w, r, "stop")
	if !ok {
		return
	}
	st, err := s.store.RemoveStop(k, i)
	s.respond(w, r, st, err)
}

// respond finishes a mutation: the error mapped to a status, or a redirect
// back to the page for forms, or the new state for JSON clients.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, st strip.State, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if wantsJSON(r) {
		s.writeState(w, st)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) writeState(w http.ResponseWriter, st strip.State) {
	writeJSON(w, http.StatusOK, StripsResponse{
		Version: s.store.Version(),
		Strips:  st.Raw(),
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	s.log.Debug("request %s %s rejected: %s", r.Method, r.URL.Path, lgerrors.CodeOf(err))

	if wantsJSON(r) {
		body := ErrorBody{Code: lgerrors.CodeOf(err), Message: lgerrors.MessageOf(err)}
		var lgErr *lgerrors.Error
		if errors.As(err, &lgErr) {
			body.Suggestion = lgErr.Suggestion
		}
		writeJSON(w, status, ErrorResponse{Error: body})
		return
	}
	http.Error(w, lgerrors.MessageOf(err), status)
}

// StatusFor maps an edit error to its HTTP status.
func StatusFor(err error) int {
	switch lgerrors.CodeOf(err) {
	case lgerrors.ErrIndex:
		return http.StatusNotFound
	case lgerrors.ErrInvariant:
		return http.StatusConflict
	case lgerrors.ErrColor:
		return http.StatusUnprocessableEntity
	case lgerrors.ErrOp:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// pathIndex parses a non-negative integer path value, writing a 400 if it
// isn't one.
func pathIndex(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.PathValue(name)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		http.Error(w, fmt.Sprintf("Invalid %s index %q", name, raw), http.StatusBadRequest)
		return 0, false
	}
	return n, true
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// inputColor converts a stop color to the #rrggbb form color inputs require.
// Colors that don't parse as hex show as black.
func inputColor(c string) string {
	parsed, err := colorful.Hex(c)
	if err != nil {
		return "#000000"
	}
	return parsed.Hex()
}
