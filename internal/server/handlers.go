package server

import (
	"net/http"
	"strconv"

	"github.com/b-hayes/notes/internal/core"
	"github.com/b-hayes/notes/internal/helpers"
)

type successResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
}

type contentRequest struct {
	Content *string `json:"content"`
}

type moveRequest struct {
	DestinationPath string `json:"destinationPath"`
}

type previewResponse struct {
	HTML string `json:"html"`
}

func (s *Server) handleStructure(w http.ResponseWriter, r *http.Request) {
	tree, err := s.collection.Tree()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	recursive, _ := strconv.ParseBool(r.URL.Query().Get("recursive"))
	entries, err := s.collection.List(r.URL.Query().Get("path"), recursive)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []*core.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleReadNote(w http.ResponseWriter, r *http.Request) {
	path, err := wildcardPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	note, err := s.collection.Read(path)
	if err != nil {
		writeError(w, err)
		return
	}

	etag := `"` + helpers.Hash([]byte(note.Content)) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleWriteNote(w http.ResponseWriter, r *http.Request) {
	path, err := wildcardPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req contentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Content == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing content", Code: "bad_request"})
		return
	}
	result, err := s.collection.Write(path, *req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Path: result.Path})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	path, err := wildcardPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	deleted, err := s.collection.Delete(path)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Path: deleted})
}

func (s *Server) handleMkdir(w http.ResponseWriter, r *http.Request) {
	path, err := wildcardPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	created, err := s.collection.Mkdir(path)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Path: created})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	path, err := wildcardPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req moveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.DestinationPath == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing destinationPath", Code: "bad_request"})
		return
	}
	result, err := s.collection.Move(path, req.DestinationPath)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, From: result.From, To: result.To})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	listOnly, _ := strconv.ParseBool(r.URL.Query().Get("list"))
	result, err := s.collection.Search(r.Context(), r.URL.Query().Get("q"), listOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleReadJournal(w http.ResponseWriter, r *http.Request) {
	entry, err := s.collection.Journal("")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleAddJournal(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Content == nil || *req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing content", Code: "bad_request"})
		return
	}
	entry, err := s.collection.Journal(*req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	var content string
	if req.Content != nil {
		content = *req.Content
	}
	html := s.engine(content)
	if html == "" {
		html = s.placeholder
	}
	writeJSON(w, http.StatusOK, previewResponse{HTML: html})
}
