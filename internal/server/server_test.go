package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New("localhost", 0)
}

func postJSON(t *testing.T, s *Server, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"healthy"`)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestVersionEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"formlens"`)
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestBuildPromptEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/v1/prompts", `{"input_type": "checkbox"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Spec struct {
			InputType string `json:"input_type"`
			Message   string `json:"message"`
		} `json:"spec"`
		Diagnostics []string `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, "checkbox", response.Spec.InputType)
	require.NotEmpty(t, response.Spec.Message)
	require.Len(t, response.Diagnostics, 1)
}

func TestBuildPromptNone(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/v1/prompts", `{"input_type": "none", "message": "ignored"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"spec":null`)
}

func TestBuildPromptInvalidLineHeight(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/v1/prompts", `{"input_type": "text", "line_height": 0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestBuildPromptUnknownType(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/v1/prompts", `{"input_type": "slider"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestReshapeEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/v1/reshape", `{"records": [{"A": 1, "B": "x"}], "key_column": "Property"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Pairs []map[string]any `json:"pairs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Pairs, 2)
	require.Equal(t, "A", response.Pairs[0]["Property"])
	require.Equal(t, "x", response.Pairs[1]["Value"])
}

func TestReshapeEmpty(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/v1/reshape", `{"records": []}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"pairs":[]`)
}

func TestImageEncodeDecodeEndpoints(t *testing.T) {
	s := newTestServer(t)

	img := image.NewRGBA(image.Rect(0, 0, 5, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "red.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	body, err := json.Marshal(map[string]any{"paths": []string{path, "/absent/file.png"}})
	require.NoError(t, err)

	rec := postJSON(t, s, "/v1/images/encode", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var encodeResp struct {
		Results []struct {
			Data  string `json:"data"`
			Error string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &encodeResp))
	require.Len(t, encodeResp.Results, 2)
	require.NotEmpty(t, encodeResp.Results[0].Data)
	require.Empty(t, encodeResp.Results[0].Error)
	require.NotEmpty(t, encodeResp.Results[1].Error)

	decodeBody, err := json.Marshal(map[string]any{"data": []string{encodeResp.Results[0].Data, "garbage"}})
	require.NoError(t, err)

	rec = postJSON(t, s, "/v1/images/decode", string(decodeBody))
	require.Equal(t, http.StatusOK, rec.Code)

	var decodeResp struct {
		Results []struct {
			Width  int    `json:"width"`
			Height int    `json:"height"`
			PNG    string `json:"png"`
			Error  string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decodeResp))
	require.Len(t, decodeResp.Results, 2)
	require.Equal(t, 5, decodeResp.Results[0].Width)
	require.Equal(t, 4, decodeResp.Results[0].Height)
	require.NotEmpty(t, decodeResp.Results[0].PNG)
	require.NotEmpty(t, decodeResp.Results[1].Error)
}

func TestImageEncodeRequiresPaths(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/v1/images/encode", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
