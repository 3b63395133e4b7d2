// Package report writes a JSON sidecar describing one fit run: what
// came in, what the search chose, and what was written out.
package report

import (
	"encoding/json"
	"os"
	"time"
)

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1

// Report is the top-level sidecar document.
type Report struct {
	Version     int    `json:"version"`
	GeneratedAt string `json:"generated_at"`
	Tool        string `json:"tool"`
	Target      int64  `json:"target_bytes"`
	Input       Input  `json:"input"`
	Output      Output `json:"output"`
}

// Input holds metadata about the source image.
type Input struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
}

// Output describes the encoded artifact the search settled on.
type Output struct {
	Path       string  `json:"path"`
	Codec      string  `json:"codec"` // "jpeg", "webp", "png"
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Size       int64   `json:"size"`
	Quality    float64 `json:"quality,omitempty"` // [0,1], lossy codecs only
	Scale      float64 `json:"scale"`             // 1.0 unless dimensions were reduced
	OverBudget bool    `json:"over_budget,omitempty"`
	Attempts   int     `json:"attempts"` // encodes run by the search
	Hash       string  `json:"hash"`     // first 16 hex chars of xxhash64
}

// New creates a report stamped with the current time and tool version.
func New(toolVersion string) *Report {
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Tool:        "imgfit " + toolVersion,
	}
}

// WriteJSON serializes the report to a JSON file.
func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
