package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/b-hayes/notes/internal/core"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Limit of request bodies
const maxBodySize = 10 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	if r.Body == nil {
		return fmt.Errorf("missing request body: %w", core.ErrInvalidArgument)
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("missing request body: %w", core.ErrInvalidArgument)
		}
		return fmt.Errorf("invalid JSON: %v: %w", err, core.ErrInvalidArgument)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		core.CurrentLogger().Warnf("Unable to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	if status == http.StatusInternalServerError {
		core.CurrentLogger().Warnf("Internal error: %v", err)
	}
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown error", Code: "unknown_error"}
	}
	switch {
	case errors.Is(err, core.ErrAccessDenied):
		return http.StatusForbidden, errorResponse{Error: "Access denied", Code: "forbidden"}
	case errors.Is(err, core.ErrNoteNotFound):
		return http.StatusNotFound, errorResponse{Error: err.Error(), Code: "not_found"}
	case errors.Is(err, core.ErrNoteExists):
		return http.StatusConflict, errorResponse{Error: err.Error(), Code: "conflict"}
	case errors.Is(err, core.ErrInvalidArgument):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "bad_request"}
	}
	return http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: "internal_error"}
}

// wildcardPath returns the path matched by the trailing * of the route.
func wildcardPath(r *http.Request) (string, error) {
	path := chi.URLParam(r, "*")
	if r.URL.RawPath != "" {
		// chi routes on the raw path when the path contains escaped characters
		unescaped, err := url.PathUnescape(path)
		if err != nil {
			return "", fmt.Errorf("invalid path: %w", core.ErrInvalidArgument)
		}
		path = unescaped
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return "", fmt.Errorf("missing path: %w", core.ErrInvalidArgument)
	}
	return path, nil
}

// requestLogger logs every request through the application logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		core.CurrentLogger().Infof("%s %s %d %dB %s", r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start))
	})
}
