package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MJE43/stardew-seed-oracle/internal/apierrors"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeEngineError(w http.ResponseWriter, r *http.Request, status int, err *apierrors.EngineError) {
	err.RequestID = middleware.GetReqID(r.Context())
	w.Header().Set("X-Error-Type", err.Type)
	writeJSON(w, status, err)
}

func writeParseError(w http.ResponseWriter, r *http.Request, err error) {
	if ee, ok := err.(*apierrors.EngineError); ok {
		writeEngineError(w, r, http.StatusBadRequest, ee)
		return
	}
	writeEngineError(w, r, http.StatusBadRequest, apierrors.New(apierrors.TypeParse, err.Error()).Build())
}
