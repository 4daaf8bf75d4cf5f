package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/MJE43/stardew-seed-oracle/internal/apierrors"
	"github.com/MJE43/stardew-seed-oracle/internal/search"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

type searchRequest struct {
	Filter     json.RawMessage `json:"filter"`
	SeedLo     int32           `json:"seed_lo"`
	SeedHi     int32           `json:"seed_hi"`
	MaxResults int             `json:"max_results"`
	Version    string          `json:"version"`
}

type searchResponse struct {
	State   string  `json:"state"`
	Checked uint64  `json:"checked"`
	Found   uint64  `json:"found"`
	Matches []int32 `json:"matches"`
}

// handleSearch runs a synchronous search_range call and returns the full
// match list. Long-running searches are expected to be submitted through
// internal/jobstore instead; this endpoint is for bounded, interactive
// queries.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
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
	if req.SeedLo > req.SeedHi {
		writeJSON(w, http.StatusOK, searchResponse{State: "exhausted"})
		return
	}

	filter, err := search.ParseFilter(req.Filter)
	if err != nil {
		writeParseError(w, r, err)
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
			return true
		},
	})

	writeJSON(w, http.StatusOK, searchResponse{
		State:   result.State.String(),
		Checked: result.Checked,
		Found:   result.Found,
		Matches: matches,
	})
}
