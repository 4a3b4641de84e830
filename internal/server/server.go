package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/b-hayes/notes/internal/core"
	"github.com/b-hayes/notes/pkg/markdown"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed static
var staticFiles embed.FS

// How long to wait for in-flight requests on shutdown
const shutdownTimeout = 5 * time.Second

// Server exposes the collection over HTTP.
type Server struct {
	collection  *core.Collection
	engine      markdown.Engine
	placeholder string
}

// New creates a server for the collection using its preview configuration.
func New(collection *core.Collection) (*Server, error) {
	previewConfig := collection.Config().ConfigFile.Preview
	engine, err := markdown.LookupEngine(previewConfig.Engine)
	if err != nil {
		return nil, err
	}
	return &Server{
		collection:  collection,
		engine:      engine,
		placeholder: previewConfig.Placeholder,
	}, nil
}

// Router returns the HTTP handler serving the API and the editor page.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	static, _ := fs.Sub(staticFiles, "static")
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, static, "index.html")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/structure", s.handleStructure)
		r.Get("/list", s.handleList)

		r.Get("/notes/*", s.handleReadNote)
		r.Post("/notes/*", s.handleWriteNote)
		r.Delete("/notes/*", s.handleDelete)

		r.Post("/folders/*", s.handleMkdir)
		r.Post("/move/*", s.handleMove)

		r.Get("/search", s.handleSearch)

		r.Get("/journal", s.handleReadJournal)
		r.Post("/journal", s.handleAddJournal)

		r.Post("/preview", s.handlePreview)
	})
	return r
}

// ListenAndServe serves requests until the context is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		core.CurrentLogger().Infof("Serving %s on %s", s.collection.Path, addr)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("unable to shut down server: %w", err)
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
