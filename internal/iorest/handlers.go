package iorest

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	wcvp "github.com/gnames/wcvp/pkg"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/gnames/wcvp/pkg/metadata"
	"github.com/gnames/wcvp/pkg/record"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Info describes the served release.
type Info struct {
	Metadata   metadata.Metadata  `json:"metadata"`
	Records    int                `json:"records"`
	Duplicates dataset.Duplicates `json:"duplicates"`
}

// Name is a record with its canonical form and resolved accepted name.
type Name struct {
	record.Record
	Canonical string `json:"canonical,omitempty"`
	// Accepted is given for names that are not accepted themselves.
	Accepted *record.Record `json:"accepted,omitempty"`
}

// ErrorResponse is the body of every non-200 answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("pong"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, map[string]string{
		"version": wcvp.Version,
		"build":   wcvp.Build,
	})
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, Info{
		Metadata:   s.data.Metadata(),
		Records:    s.data.Len(),
		Duplicates: s.data.Duplicates(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, s.data.Statistics())
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest,
			"plant_name_id must be a number, got %q", idStr)
		return
	}

	rec, ok := s.data.ByID(id)
	if !ok {
		s.respondError(w, r, http.StatusNotFound,
			"no record with plant_name_id %d", id)
		return
	}
	s.respondJSON(w, r, s.name(rec))
}

func (s *Server) handlePowo(w http.ResponseWriter, r *http.Request) {
	powoID := chi.URLParam(r, "powoID")
	rec, ok := s.data.ByPowoID(powoID)
	if !ok {
		s.respondError(w, r, http.StatusNotFound,
			"no record with powo_id %q", powoID)
		return
	}
	s.respondJSON(w, r, s.name(rec))
}

func (s *Server) handleNames(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		s.respondError(w, r, http.StatusBadRequest, "query parameter q is empty")
		return
	}

	recs := s.data.ByName(q)
	res := make([]Name, len(recs))
	for i := range recs {
		res[i] = s.name(recs[i])
	}
	s.respondJSON(w, r, res)
}

func (s *Server) name(rec record.Record) Name {
	res := Name{Record: rec}
	res.Canonical, _ = s.data.Canonical(rec.ID)
	if acc, ok := s.data.Accepted(rec); ok && acc.ID != rec.ID {
		res.Accepted = &acc
	}
	return res
}

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, v any) {
	bs, err := s.enc.Encode(v)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError,
			"cannot encode response: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(bs)
}

func (s *Server) respondError(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	format string,
	args ...any,
) {
	msg := fmt.Sprintf(format, args...)
	reqID := middleware.GetReqID(r.Context())
	slog.Warn("request error",
		"path", r.URL.Path,
		"status", status,
		"error", msg,
		"request_id", reqID,
	)

	bs, _ := s.enc.Encode(ErrorResponse{Error: msg, RequestID: reqID})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(bs)
}
