package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/formlens/formlens/internal/errors"

	"github.com/formlens/formlens/internal/reshape"
)

// ReshapeRequest carries wide records plus optional column names.
type ReshapeRequest struct {
	Records     []reshape.Record `json:"records"`
	KeyColumn   string           `json:"key_column,omitempty"`
	ValueColumn string           `json:"value_column,omitempty"`
}

// ReshapeResponse lists long-form pairs keyed by the configured columns.
type ReshapeResponse struct {
	Pairs []map[string]any `json:"pairs"`
}

// ReshapeHandler flattens wide records into key/value pairs.
func ReshapeHandler(w http.ResponseWriter, r *http.Request) {
	var req ReshapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, r, apperrors.NewInvalidInputError("request body must be a JSON reshape request"))
		return
	}

	cols := reshape.Columns{Key: req.KeyColumn, Value: req.ValueColumn}.Normalize()

	response := ReshapeResponse{Pairs: make([]map[string]any, 0)}
	for pair := range reshape.Long(req.Records) {
		response.Pairs = append(response.Pairs, map[string]any{
			cols.Key:   pair.Key,
			cols.Value: pair.Value,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
