package web

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() http.Handler {
	return NewServer(log.New(io.Discard, "", 0)).Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestListPuzzles(t *testing.T) {
	h := newTestServer()
	rec, body := doJSON(t, h, http.MethodGet, "/api/puzzles", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	puzzles, ok := body["puzzles"].([]any)
	require.True(t, ok)
	require.Len(t, puzzles, 7)

	first := puzzles[0].(map[string]any)
	assert.Equal(t, "easy_1", first["id"])
	assert.Equal(t, "easy", first["difficulty"])
}

func TestGetPuzzle(t *testing.T) {
	h := newTestServer()
	rec, body := doJSON(t, h, http.MethodGet, "/api/puzzle/easy_1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "easy_1", body["id"])
	assert.Contains(t, body["puzzle"], "#")
	assert.NotEmpty(t, body["grid"])
}

func TestGetPuzzleNotFound(t *testing.T) {
	h := newTestServer()
	rec, body := doJSON(t, h, http.MethodGet, "/api/puzzle/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body["error"], "not found")
}

func TestSolveEndpoint(t *testing.T) {
	h := newTestServer()
	rec, body := doJSON(t, h, http.MethodPost, "/api/solve",
		`{"puzzle": "####\n#. #\n#$ #\n#@ #\n####"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "U", body["solution"])
	assert.Equal(t, float64(1), body["length"])

	stats := body["stats"].(map[string]any)
	assert.Equal(t, true, stats["optimal"])

	initial := body["initial_state"].(map[string]any)
	assert.Equal(t, []any{float64(1), float64(3)}, initial["player"])
}

func TestSolveEndpointFailureInBody(t *testing.T) {
	h := newTestServer()
	// Box/goal mismatch: still HTTP 200, failure encoded in the body.
	rec, body := doJSON(t, h, http.MethodPost, "/api/solve",
		`{"puzzle": "#####\n#@$ #\n#..*#\n#####"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "invalid_puzzle", body["reason"])
}

func TestSolveEndpointMissingPuzzle(t *testing.T) {
	h := newTestServer()
	rec, body := doJSON(t, h, http.MethodPost, "/api/solve", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestSolveEndpointMalformedBody(t *testing.T) {
	h := newTestServer()
	rec, _ := doJSON(t, h, http.MethodPost, "/api/solve", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateEndpoint(t *testing.T) {
	h := newTestServer()

	rec, body := doJSON(t, h, http.MethodPost, "/api/validate",
		`{"grid": ["####", "#$.#", "####"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["valid"])
	errs := body["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "player")

	// Count mismatch is a warning, not an error.
	rec, body = doJSON(t, h, http.MethodPost, "/api/validate",
		`{"grid": ["#####", "#@$.#", "#..$#", "#####"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["valid"])
	assert.NotEmpty(t, body["warnings"])
}

func TestValidateEndpointNoGrid(t *testing.T) {
	h := newTestServer()
	rec, body := doJSON(t, h, http.MethodPost, "/api/validate", `{}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["valid"])
}
