// Command run_benchmarks solves every preset puzzle and collects metrics.
// Results are written as CSV and JSON for tracking solver performance
// across revisions.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/elektrokombinacija/sokoban/internal/algo"
	"github.com/elektrokombinacija/sokoban/internal/core"
)

// BenchmarkResult stores results from a single solve run.
type BenchmarkResult struct {
	Timestamp      string  `json:"timestamp"`
	CommitHash     string  `json:"commit_hash"`
	GoVersion      string  `json:"go_version"`
	OS             string  `json:"os"`
	Arch           string  `json:"arch"`
	Puzzle         string  `json:"puzzle"`
	Difficulty     string  `json:"difficulty"`
	RuntimeMs      float64 `json:"runtime_ms"`
	Success        bool    `json:"success"`
	Reason         string  `json:"reason,omitempty"`
	SolutionLength int     `json:"solution_length"`
	StatesExplored int     `json:"states_explored"`
}

func getGitCommit() string {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}

func main() {
	timeout := flag.Int("timeout", 60, "per-puzzle timeout in seconds")
	maxStates := flag.Int("max-states", 10_000_000, "per-puzzle state cap")
	outDir := flag.String("out", "results", "output directory")
	flag.Parse()

	commit := getGitCommit()
	now := time.Now().UTC().Format(time.RFC3339)

	var results []BenchmarkResult

	fmt.Printf("%-10s %-8s %-10s %-8s %-10s %s\n",
		"puzzle", "ok", "pushes", "states", "ms", "reason")

	for _, preset := range core.Presets() {
		start := time.Now()
		result := algo.SolvePuzzle(preset.Text, algo.Options{
			Timeout:   time.Duration(*timeout) * time.Second,
			MaxStates: *maxStates,
		})
		elapsed := time.Since(start)

		br := BenchmarkResult{
			Timestamp:      now,
			CommitHash:     commit,
			GoVersion:      runtime.Version(),
			OS:             runtime.GOOS,
			Arch:           runtime.GOARCH,
			Puzzle:         preset.ID,
			Difficulty:     preset.Difficulty,
			RuntimeMs:      float64(elapsed.Microseconds()) / 1000,
			Success:        result.Success,
			Reason:         string(result.Reason),
			SolutionLength: len(result.Solution),
			StatesExplored: result.StatesExplored,
		}
		results = append(results, br)

		fmt.Printf("%-10s %-8v %-10d %-8d %-10.2f %s\n",
			br.Puzzle, br.Success, br.SolutionLength, br.StatesExplored, br.RuntimeMs, br.Reason)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}
	stamp := time.Now().UTC().Format("20060102_150405")

	if err := writeCSV(filepath.Join(*outDir, "bench_"+stamp+".csv"), results); err != nil {
		fmt.Fprintf(os.Stderr, "writing csv: %v\n", err)
		os.Exit(1)
	}
	if err := writeJSON(filepath.Join(*outDir, "bench_"+stamp+".json"), results); err != nil {
		fmt.Fprintf(os.Stderr, "writing json: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nresults written to %s\n", *outDir)
}

func writeCSV(path string, results []BenchmarkResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"timestamp", "commit", "go_version", "os", "arch",
		"puzzle", "difficulty", "runtime_ms", "success", "reason",
		"solution_length", "states_explored"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Timestamp, r.CommitHash, r.GoVersion, r.OS, r.Arch,
			r.Puzzle, r.Difficulty,
			strconv.FormatFloat(r.RuntimeMs, 'f', 3, 64),
			strconv.FormatBool(r.Success), r.Reason,
			strconv.Itoa(r.SolutionLength), strconv.Itoa(r.StatesExplored),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, results []BenchmarkResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
