// Package web exposes the solver over HTTP. Solve failures are encoded in
// the response body with status 200; 400 and 500 are reserved for
// malformed requests and internal errors.
package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elektrokombinacija/sokoban/internal/algo"
	"github.com/elektrokombinacija/sokoban/internal/core"
)

// Server routes solver requests.
type Server struct {
	mux    *http.ServeMux
	logger *log.Logger
}

// NewServer builds a Server with all routes registered.
func NewServer(logger *log.Logger) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
	}
	s.mux.HandleFunc("GET /api/puzzles", s.handlePuzzles)
	s.mux.HandleFunc("GET /api/puzzle/{id}", s.handlePuzzle)
	s.mux.HandleFunc("POST /api/solve", s.handleSolve)
	s.mux.HandleFunc("POST /api/validate", s.handleValidate)
	return s
}

// Handler returns the root handler with request-ID and recovery middleware
// applied.
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.withRecovery(s.mux))
}

// withRequestID tags each request with a UUID, echoed in X-Request-Id and
// prefixed to log lines.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("[%s] %s %s (%v)", id, r.Method, r.URL.Path, time.Since(start))
	})
}

// withRecovery converts a handler panic into a 500 with a structured body
// instead of killing the connection.
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Printf("panic serving %s: %v", r.URL.Path, rec)
				writeJSON(w, http.StatusInternalServerError, map[string]any{
					"success": false,
					"error":   "internal server error",
					"reason":  "server_error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type puzzleSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
}

func (s *Server) handlePuzzles(w http.ResponseWriter, r *http.Request) {
	presets := core.Presets()
	out := make([]puzzleSummary, len(presets))
	for i, p := range presets {
		out[i] = puzzleSummary{ID: p.ID, Name: p.Name, Difficulty: p.Difficulty}
	}
	writeJSON(w, http.StatusOK, map[string]any{"puzzles": out})
}

func (s *Server) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	preset, ok := core.PresetByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "puzzle not found"})
		return
	}

	rows := strings.Split(preset.Text, "\n")
	grid := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j := range row {
			cells[j] = string(row[j])
		}
		grid[i] = cells
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":     preset.ID,
		"puzzle": preset.Text,
		"grid":   grid,
	})
}

type solveRequest struct {
	Puzzle    string  `json:"puzzle"`
	Timeout   float64 `json:"timeout"`    // seconds
	MaxStates int     `json:"max_states"`
}

type solveStats struct {
	StatesExplored int     `json:"states_explored"`
	TimeElapsed    float64 `json:"time_elapsed"` // seconds
	Optimal        bool    `json:"optimal,omitempty"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "malformed request body",
		})
		return
	}
	if req.Puzzle == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "no puzzle provided",
		})
		return
	}

	opts := algo.Options{
		Timeout:   time.Duration(req.Timeout * float64(time.Second)),
		MaxStates: req.MaxStates,
	}
	result := algo.SolvePuzzle(req.Puzzle, opts)

	if !result.Success {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"error":   result.Err,
			"reason":  string(result.Reason),
			"stats": solveStats{
				StatesExplored: result.StatesExplored,
				TimeElapsed:    result.TimeElapsed.Seconds(),
			},
		})
		return
	}

	moves := make([]string, len(result.Solution))
	for i := range result.Solution {
		moves[i] = string(result.Solution[i])
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"solution": result.Solution,
		"moves":    moves,
		"length":   len(result.Solution),
		"stats": solveStats{
			StatesExplored: result.StatesExplored,
			TimeElapsed:    result.TimeElapsed.Seconds(),
			Optimal:        result.Optimal,
		},
		"initial_state": initialStateJSON(req.Puzzle),
	})
}

// initialStateJSON re-parses the puzzle into coordinate lists for the
// front end. The puzzle already solved, so parsing cannot fail here.
func initialStateJSON(text string) map[string]any {
	puzzle, initial, err := core.ParsePuzzle(text)
	if err != nil {
		return nil
	}

	boxes := make([][2]int, len(initial.Boxes))
	for i, b := range initial.Boxes {
		boxes[i] = [2]int{b.X, b.Y}
	}

	goals := make([][2]int, 0, len(puzzle.Goals))
	for g := range puzzle.Goals {
		goals = append(goals, [2]int{g.X, g.Y})
	}
	sort.Slice(goals, func(i, j int) bool {
		if goals[i][1] != goals[j][1] {
			return goals[i][1] < goals[j][1]
		}
		return goals[i][0] < goals[j][0]
	})

	return map[string]any{
		"player": [2]int{initial.Player.X, initial.Player.Y},
		"boxes":  boxes,
		"goals":  goals,
	}
}

type validateRequest struct {
	Grid []string `json:"grid"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Grid == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"valid":    false,
			"errors":   []string{"no grid provided"},
			"warnings": []string{},
		})
		return
	}

	errs := []string{}
	warnings := []string{}

	var players, boxes, goals int
	for _, row := range req.Grid {
		players += strings.Count(row, "@") + strings.Count(row, "+")
		boxes += strings.Count(row, "$") + strings.Count(row, "*")
		goals += strings.Count(row, ".") + strings.Count(row, "*") + strings.Count(row, "+")
	}

	switch {
	case players == 0:
		errs = append(errs, "must have exactly one player (@)")
	case players > 1:
		errs = append(errs, "can only have one player")
	}
	if boxes == 0 {
		errs = append(errs, "must have at least one box ($)")
	}
	if goals == 0 {
		errs = append(errs, "must have at least one goal (.)")
	}
	if boxes != goals && boxes > 0 && goals > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"box count (%d) doesn't match goal count (%d)", boxes, goals))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"valid":    len(errs) == 0,
		"errors":   errs,
		"warnings": warnings,
	})
}
