// Package server provides the HTTP handlers of the lookup page.
package server

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"github.com/at-ishikawa/wordlens/internal/lookup"
	"github.com/at-ishikawa/wordlens/internal/render"
)

const wordParam = "word"

// LookupHandler serves the lookup page and its JSON counterpart.
// Every request gets its own controller, so requests never share state.
type LookupHandler struct {
	reader dictionary.Reader
	page   render.Renderer
	api    render.Renderer
}

func NewLookupHandler(reader dictionary.Reader, page *template.Template) *LookupHandler {
	return &LookupHandler{
		reader: reader,
		page:   render.NewHTMLRenderer(page),
		api:    render.JSONRenderer{},
	}
}

// Register adds the handler routes to mux.
func (h *LookupHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.ServePage)
	mux.HandleFunc("GET /api/lookup", h.ServeAPI)
}

func (h *LookupHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	state := lookup.State{}
	if r.URL.Query().Has(wordParam) {
		state = h.submit(r)
	}
	h.write(w, r, "text/html; charset=utf-8", h.page, state)
}

func (h *LookupHandler) ServeAPI(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, "application/json", h.api, h.submit(r))
}

func (h *LookupHandler) submit(r *http.Request) lookup.State {
	controller := lookup.NewController(h.reader)
	return controller.Submit(r.Context(), r.URL.Query().Get(wordParam))
}

func (h *LookupHandler) write(w http.ResponseWriter, r *http.Request, contentType string, renderer render.Renderer, state lookup.State) {
	var body bytes.Buffer
	if err := renderer.Render(&body, render.Build(state)); err != nil {
		slog.Default().ErrorContext(r.Context(), "failed to render a view",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status := StatusCode(state)
	slog.Default().InfoContext(r.Context(), "lookup",
		slog.String("path", r.URL.Path),
		slog.String("query", state.Query),
		slog.Int("status", status),
	)
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := body.WriteTo(w); err != nil {
		slog.Default().WarnContext(r.Context(), "failed to write a response", slog.Any("error", err))
	}
}

// StatusCode maps a settled state onto an HTTP status.
func StatusCode(state lookup.State) int {
	kind, ok := dictionary.KindOf(state.Err)
	if !ok {
		return http.StatusOK
	}
	switch kind {
	case dictionary.KindValidation:
		return http.StatusBadRequest
	case dictionary.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// CORS allows the listed origins to call the handlers from a browser.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
