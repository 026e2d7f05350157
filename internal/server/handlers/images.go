package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"

	apperrors "github.com/formlens/formlens/internal/errors"

	"github.com/formlens/formlens/internal/imaging"
)

// EncodeImagesRequest asks the service to encode server-local image files.
type EncodeImagesRequest struct {
	Paths       []string `json:"paths"`
	Format      string   `json:"format,omitempty"`
	MaxSize     int      `json:"max_size,omitempty"`
	JPEGQuality int      `json:"jpeg_quality,omitempty"`
}

// EncodeImageResult is one per-path outcome; failures are per-item.
type EncodeImageResult struct {
	Path  string `json:"path"`
	Data  string `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// EncodeImagesResponse lists results in input order.
type EncodeImagesResponse struct {
	Results []EncodeImageResult `json:"results"`
}

// EncodeImagesHandler encodes image files to base64 text.
func EncodeImagesHandler(w http.ResponseWriter, r *http.Request) {
	var req EncodeImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, r, apperrors.NewInvalidInputError("request body must be a JSON encode request"))
		return
	}
	if len(req.Paths) == 0 {
		respondWithError(w, r, apperrors.NewInvalidInputError("paths is required"))
		return
	}

	format, err := imaging.ParseFormat(req.Format)
	if err != nil {
		respondWithError(w, r, apperrors.NewInvalidInputError(err.Error()))
		return
	}

	opts := imaging.EncodeOptions{
		Format:      format,
		MaxSize:     req.MaxSize,
		JPEGQuality: req.JPEGQuality,
	}

	response := EncodeImagesResponse{Results: make([]EncodeImageResult, 0, len(req.Paths))}
	i := 0
	for encoded, err := range imaging.EncodeFiles(req.Paths, opts) {
		result := EncodeImageResult{Path: req.Paths[i]}
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Data = encoded
		}
		response.Results = append(response.Results, result)
		i++
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// DecodeImagesRequest carries base64 text representations to decode.
type DecodeImagesRequest struct {
	Data []string `json:"data"`
}

// DecodeImageResult reports the normalized bitmap for one input: its
// dimensions plus the normalized PNG bytes as base64.
type DecodeImageResult struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	PNG    string `json:"png,omitempty"`
	Error  string `json:"error,omitempty"`
}

// DecodeImagesResponse lists results in input order.
type DecodeImagesResponse struct {
	Results []DecodeImageResult `json:"results"`
}

// DecodeImagesHandler decodes base64 text back into normalized bitmaps.
func DecodeImagesHandler(w http.ResponseWriter, r *http.Request) {
	var req DecodeImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, r, apperrors.NewInvalidInputError("request body must be a JSON decode request"))
		return
	}
	if len(req.Data) == 0 {
		respondWithError(w, r, apperrors.NewInvalidInputError("data is required"))
		return
	}

	response := DecodeImagesResponse{Results: make([]DecodeImageResult, 0, len(req.Data))}
	for img, err := range imaging.DecodeAll(req.Data) {
		var result DecodeImageResult
		if err != nil {
			result.Error = err.Error()
		} else {
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				result.Error = err.Error()
			} else {
				bounds := img.Bounds()
				result.Width = bounds.Dx()
				result.Height = bounds.Dy()
				result.PNG = base64.StdEncoding.EncodeToString(buf.Bytes())
			}
		}
		response.Results = append(response.Results, result)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
