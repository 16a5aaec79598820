// Package web serves the playground over HTTP: an HTML page with the catalog
// and editor, plus a small JSON API over the catalog and the rule parser.
package web

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/yacobolo/cssplay/internal/catalog"
	"github.com/yacobolo/cssplay/internal/playground"
	"github.com/yacobolo/cssplay/internal/rules"
)

//go:embed templates/page.html
var templates embed.FS

// maxBodyBytes bounds form and API request bodies
const maxBodyBytes = 64 << 10

// Server renders the playground page and the JSON API
type Server struct {
	cat    *catalog.Catalog
	logger *zap.Logger
	md     goldmark.Markdown
	page   *template.Template
	mux    *http.ServeMux
}

// NewServer returns the HTTP handler for cat. A nil logger disables request logging.
func NewServer(cat *catalog.Catalog, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cat:    cat,
		logger: logger,
		md:     goldmark.New(),
		page:   template.Must(template.ParseFS(templates, "templates/page.html")),
		mux:    http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /{$}", s.handlePlay)
	s.mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	s.mux.HandleFunc("GET /api/catalog/{id}", s.handleEntry)
	s.mux.HandleFunc("POST /api/parse", s.handleParse)
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// ListenAndServe serves handler on addr until ctx is done, then shuts down
// gracefully. It returns nil after a clean shutdown.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// pageData is what page.html renders
type pageData struct {
	Categories  []categoryView
	Selected    *entryView
	EntryID     string
	Input       string
	InlineStyle template.CSS
	Applied     bool
	AppliedCSS  string
}

type categoryView struct {
	Name    string
	Entries []entryLink
}

type entryLink struct {
	ID     string
	Title  string
	Active bool
}

type entryView struct {
	ID          string
	Title       string
	Description template.HTML // Rendered markdown
	Rule        string
	Preview     template.HTML // Trusted catalog markup
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	session := playground.New(s.cat)
	session.Select(r.URL.Query().Get("entry"))
	s.render(w, session, false)
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	// Select first: selecting resets the custom input
	session := playground.New(s.cat)
	session.Select(r.PostForm.Get("entry"))
	session.SetInput(r.PostForm.Get("css"))
	session.Apply()
	s.render(w, session, true)
}

func (s *Server) render(w http.ResponseWriter, session *playground.Session, applied bool) {
	view := session.Snapshot()
	data := pageData{
		Input: view.Input,
		// Values are stripped of characters that could leave the attribute
		InlineStyle: template.CSS(view.InlineStyle),
		Applied:     applied,
		AppliedCSS:  view.Directives.CSS(),
	}

	activeID := ""
	if view.Entry != nil {
		activeID = view.Entry.ID
		data.EntryID = activeID
		data.Selected = &entryView{
			ID:          view.Entry.ID,
			Title:       view.Entry.Title,
			Description: s.markdown(view.Entry.Description),
			Rule:        view.Entry.Rule,
			Preview:     template.HTML(view.Entry.Preview),
		}
	}

	for _, cat := range s.cat.Categories() {
		cv := categoryView{Name: cat.Name}
		for _, id := range cat.IDs {
			e, _ := s.cat.Lookup(id)
			cv.Entries = append(cv.Entries, entryLink{ID: e.ID, Title: e.Title, Active: e.ID == activeID})
		}
		data.Categories = append(data.Categories, cv)
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// markdown renders an entry description. Raw HTML in descriptions is not
// passed through.
func (s *Server) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	entries := s.cat.Entries()
	if q := r.URL.Query().Get("q"); q != "" {
		entries = s.cat.Search(q)
	}
	if entries == nil {
		entries = []catalog.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	e, ok := s.cat.Lookup(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("unknown entry %q", id)})
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "body too large"})
		return
	}
	writeJSON(w, http.StatusOK, rules.Parse(string(body)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
