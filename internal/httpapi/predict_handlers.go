package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/MJE43/stardew-seed-oracle/internal/apierrors"
	"github.com/MJE43/stardew-seed-oracle/internal/mechanics"
	"github.com/MJE43/stardew-seed-oracle/internal/predictor"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

type dayRangeRequest struct {
	Seed    int32  `json:"seed"`
	DayLo   int    `json:"day_lo"`
	DayHi   int    `json:"day_hi"`
	Version string `json:"version"`
}

func (req dayRangeRequest) parseVersion() (version.Version, error) {
	v, err := version.Parse(req.Version)
	if err != nil {
		return version.Version{}, apierrors.ParseError("version", err.Error())
	}
	return v, nil
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return apierrors.ParseError("$", err.Error())
	}
	return nil
}

func (s *Server) handlePredictDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seed    int32  `json:"seed"`
		Day     int    `json:"day"`
		Version string `json:"version"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	v, err := version.Parse(req.Version)
	if err != nil {
		writeParseError(w, r, apierrors.ParseError("version", err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, predictor.PredictDay(req.Seed, req.Day, v))
}

func (s *Server) handlePredictLuckRange(w http.ResponseWriter, r *http.Request) {
	var req dayRangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, predictor.PredictLuckRange(req.Seed, req.DayLo, req.DayHi))
}

func (s *Server) handlePredictDishRange(w http.ResponseWriter, r *http.Request) {
	var req dayRangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, predictor.PredictDishRange(req.Seed, req.DayLo, req.DayHi))
}

func (s *Server) handlePredictWeatherRange(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seed       int32  `json:"seed"`
		DayLo      int    `json:"day_lo"`
		DayHi      int    `json:"day_hi"`
		HasFriends bool   `json:"has_friends"`
		Version    string `json:"version"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	v, err := version.Parse(req.Version)
	if err != nil {
		writeParseError(w, r, apierrors.ParseError("version", err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, predictor.PredictWeatherRange(req.Seed, req.DayLo, req.DayHi, req.HasFriends, v))
}

func (s *Server) handlePredictNightEventsRange(w http.ResponseWriter, r *http.Request) {
	var req dayRangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	v, err := req.parseVersion()
	if err != nil {
		writeParseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, predictor.PredictNightEventsRange(req.Seed, req.DayLo, req.DayHi, v))
}

func (s *Server) handlePredictCartRange(w http.ResponseWriter, r *http.Request) {
	var req dayRangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	v, err := req.parseVersion()
	if err != nil {
		writeParseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, predictor.PredictCartRange(req.Seed, req.DayLo, req.DayHi, v))
}

func (s *Server) handlePredictGeodes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seed             int32  `json:"seed"`
		Start            int    `json:"start"`
		Count            int    `json:"count"`
		PlayerID         int32  `json:"player_id"`
		DeepestMineLevel int32  `json:"deepest_mine_level"`
		GeodeType        string `json:"geode_type"`
		Version          string `json:"version"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	v, err := version.Parse(req.Version)
	if err != nil {
		writeParseError(w, r, apierrors.ParseError("version", err.Error()))
		return
	}
	if req.Count < 0 {
		writeEngineError(w, r, http.StatusBadRequest, apierrors.BoundsError("count", req.Count))
		return
	}
	gt := mechanics.ParseGeodeType(req.GeodeType)
	writeJSON(w, http.StatusOK, predictor.PredictGeodes(req.Seed, req.Start, req.Count, req.PlayerID, req.DeepestMineLevel, gt, v))
}

type findFloorsRequest struct {
	Seed    int32  `json:"seed"`
	Day     int    `json:"day"`
	FloorLo int    `json:"floor_lo"`
	FloorHi int    `json:"floor_hi"`
	Version string `json:"version"`
}

func (req findFloorsRequest) parseVersion() (version.Version, error) {
	v, err := version.Parse(req.Version)
	if err != nil {
		return version.Version{}, apierrors.ParseError("version", err.Error())
	}
	return v, nil
}

func (s *Server) handleFindMonsterFloors(w http.ResponseWriter, r *http.Request) {
	var req findFloorsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	v, err := req.parseVersion()
	if err != nil {
		writeParseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, predictor.FindMonsterFloors(req.Seed, req.Day, req.FloorLo, req.FloorHi, v))
}

func (s *Server) handleFindDarkFloors(w http.ResponseWriter, r *http.Request) {
	var req findFloorsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	v, err := req.parseVersion()
	if err != nil {
		writeParseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, predictor.FindDarkFloors(req.Seed, req.Day, req.FloorLo, req.FloorHi, v))
}

func (s *Server) handleFindMushroomFloors(w http.ResponseWriter, r *http.Request) {
	var req findFloorsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	v, err := req.parseVersion()
	if err != nil {
		writeParseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, predictor.FindMushroomFloors(req.Seed, req.Day, req.FloorLo, req.FloorHi, v))
}

func (s *Server) handleFindItemInCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seed    int32  `json:"seed"`
		ItemID  int32  `json:"item_id"`
		MaxDays int    `json:"max_days"`
		Version string `json:"version"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	v, err := version.Parse(req.Version)
	if err != nil {
		writeParseError(w, r, apierrors.ParseError("version", err.Error()))
		return
	}
	day, price, found := predictor.FindItemInCart(req.Seed, req.ItemID, req.MaxDays, v)
	writeJSON(w, http.StatusOK, struct {
		Day   int   `json:"day"`
		Price int32 `json:"price"`
		Found bool  `json:"found"`
	}{Day: day, Price: price, Found: found})
}

func (s *Server) handleReachableFloors(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FloorLo int `json:"floor_lo"`
		FloorHi int `json:"floor_hi"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, predictor.ReachableFloors(req.FloorLo, req.FloorHi))
}

func (s *Server) handlePredictMineFloors(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seed    int32  `json:"seed"`
		Day     int    `json:"day"`
		FloorLo int    `json:"floor_lo"`
		FloorHi int    `json:"floor_hi"`
		Version string `json:"version"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeParseError(w, r, err)
		return
	}
	v, err := version.Parse(req.Version)
	if err != nil {
		writeParseError(w, r, apierrors.ParseError("version", err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, predictor.PredictMineFloors(req.Seed, req.Day, req.FloorLo, req.FloorHi, v))
}
