package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MJE43/stardew-seed-oracle/internal/apierrors"
	"github.com/MJE43/stardew-seed-oracle/internal/search"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

type jobResponse struct {
	ID      string  `json:"id"`
	State   string  `json:"state"`
	Checked uint64  `json:"checked"`
	Found   uint64  `json:"found"`
	Matches []int32 `json:"matches,omitempty"`
}

// handleCreateSearchJob persists a search_range request and runs it to
// completion, recording every match. It gives the same result as
// handleSearch but keeps a durable record retrievable by id afterward,
// for searches submitted by clients that may disconnect mid-run.
func (s *Server) handleCreateSearchJob(w http.ResponseWriter, r *http.Request) {
	if s.jobs == nil {
		writeEngineError(w, r, http.StatusServiceUnavailable,
			apierrors.New(apierrors.TypeInternal, "job store not configured").Build())
		return
	}

	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	v, err := version.Parse(req.Version)
	if err != nil {
		writeParseError(w, r, apierrors.ParseError("version", err.Error()))
		return
	}
	filter, err := search.ParseFilter(req.Filter)
	if err != nil {
		writeParseError(w, r, err)
		return
	}

	jobID, err := s.jobs.CreateJob(req.Filter, req.SeedLo, req.SeedHi, req.MaxResults, req.Version)
	if err != nil {
		writeEngineError(w, r, http.StatusInternalServerError,
			apierrors.New(apierrors.TypeInternal, err.Error()).Build())
		return
	}

	var matches []int32
	result := search.SearchRange(search.Request{
		Filter:     filter,
		SeedLo:     req.SeedLo,
		SeedHi:     req.SeedHi,
		MaxResults: req.MaxResults,
		Version:    v,
		OnMatch: func(seed int32) bool {
			matches = append(matches, seed)
			_ = s.jobs.AppendMatch(jobID, seed)
			return true
		},
	})

	_ = s.jobs.Complete(jobID, result.State.String(), result.Checked, result.Found)

	writeJSON(w, http.StatusOK, jobResponse{
		ID:      jobID,
		State:   result.State.String(),
		Checked: result.Checked,
		Found:   result.Found,
		Matches: matches,
	})
}

// handleGetSearchJob returns a previously submitted job's stored state
// and match list.
func (s *Server) handleGetSearchJob(w http.ResponseWriter, r *http.Request) {
	if s.jobs == nil {
		writeEngineError(w, r, http.StatusServiceUnavailable,
			apierrors.New(apierrors.TypeInternal, "job store not configured").Build())
		return
	}

	jobID := chi.URLParam(r, "jobID")
	job, err := s.jobs.GetJob(jobID)
	if err != nil {
		writeEngineError(w, r, http.StatusNotFound,
			apierrors.New(apierrors.TypeValidation, "job not found").WithContext("id", jobID).Build())
		return
	}
	matches, err := s.jobs.ListMatches(jobID)
	if err != nil {
		writeEngineError(w, r, http.StatusInternalServerError,
			apierrors.New(apierrors.TypeInternal, err.Error()).Build())
		return
	}

	writeJSON(w, http.StatusOK, jobResponse{
		ID:      job.ID,
		State:   job.State,
		Checked: job.Checked,
		Found:   job.Found,
		Matches: matches,
	})
}
