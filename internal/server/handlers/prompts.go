package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/formlens/formlens/internal/errors"

	"github.com/formlens/formlens/internal/dialog"
)

// PromptRequest is the JSON shape of a prompt build request.
type PromptRequest struct {
	InputType        string   `json:"input_type,omitempty"`
	Message          string   `json:"message,omitempty"`
	DefaultValue     string   `json:"default_value,omitempty"`
	LineHeight       *int     `json:"line_height,omitempty"`
	ReadOnly         bool     `json:"read_only,omitempty"`
	ValidateNotEmpty bool     `json:"validate_not_empty,omitempty"`
	ValidateSet      []string `json:"validate_set,omitempty"`
}

// PromptResponse carries the built spec (null when the input type is none)
// and any advisory diagnostics.
type PromptResponse struct {
	Spec        *PromptSpecJSON `json:"spec"`
	Diagnostics []string        `json:"diagnostics,omitempty"`
}

// PromptSpecJSON is the serializable view of a built spec.
type PromptSpecJSON struct {
	InputType        string   `json:"input_type"`
	Message          string   `json:"message,omitempty"`
	DefaultValue     string   `json:"default_value,omitempty"`
	LineHeight       *int     `json:"line_height,omitempty"`
	ReadOnly         bool     `json:"read_only"`
	ValidateNotEmpty bool     `json:"validate_not_empty"`
	ValidateSet      []string `json:"validate_set,omitempty"`
}

// BuildPromptHandler builds a prompt spec from JSON options.
func BuildPromptHandler(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, r, apperrors.NewInvalidInputError("request body must be a JSON prompt definition"))
		return
	}

	inputType, err := dialog.ParseInputType(req.InputType)
	if err != nil {
		respondWithError(w, r, apperrors.NewInvalidInputError(err.Error()))
		return
	}

	spec, diags, err := dialog.Build(dialog.Options{
		InputType:        inputType,
		Message:          req.Message,
		DefaultValue:     req.DefaultValue,
		LineHeight:       req.LineHeight,
		ReadOnly:         req.ReadOnly,
		ValidateNotEmpty: req.ValidateNotEmpty,
		ValidateSet:      req.ValidateSet,
	})
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	response := PromptResponse{}
	for _, d := range diags {
		response.Diagnostics = append(response.Diagnostics, d.String())
	}
	if spec != nil {
		response.Spec = &PromptSpecJSON{
			InputType:        string(spec.InputType),
			Message:          spec.Message,
			DefaultValue:     spec.DefaultValue,
			LineHeight:       spec.LineHeight,
			ReadOnly:         spec.ReadOnly,
			ValidateNotEmpty: spec.ValidateNotEmpty,
			ValidateSet:      spec.ValidateSet,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
