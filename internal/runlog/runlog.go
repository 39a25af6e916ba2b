// Package runlog persists assessment runs to an append-only JSON log.
//
// The log is one JSON document (an array of entries) rewritten on each
// append. There is no file locking; concurrent writers are out of scope.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/planbalance/internal/assessment"
)

// Entry is one logged assessment run.
type Entry struct {
	Timestamp    string              `json:"timestamp"`
	Scenario     string              `json:"scenario"`
	ScenarioHash string              `json:"scenario_hash,omitempty"`
	Mode         string              `json:"mode"`
	Score        int                 `json:"score"`
	Tier         assessment.RiskTier `json:"tier"`
	HarmScore    float64             `json:"harm_score"`
	BenefitScore float64             `json:"benefit_score"`
}

// Log appends entries to a JSON log file at a fixed path.
type Log struct {
	path string
}

// Open returns a log bound to path. The file is created on first append.
func Open(path string) *Log {
	return &Log{path: path}
}

// NewEntry builds a log entry from an assessment result.
func NewEntry(r *assessment.Result) Entry {
	return Entry{
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Scenario:     r.Input.ScenarioFile,
		ScenarioHash: r.Input.ScenarioHash,
		Mode:         r.Input.Mode,
		Score:        r.Score,
		Tier:         r.Tier,
		HarmScore:    r.HarmScore,
		BenefitScore: r.BenefitScore,
	}
}

// Append adds one entry, preserving everything previously written. A
// missing or corrupt log file starts a fresh document rather than failing;
// only filesystem errors surface, and callers treat those as non-fatal.
func (l *Log) Append(e Entry) error {
	var entries []Entry
	if data, err := os.ReadFile(l.path); err == nil {
		// Corrupt content is abandoned rather than propagated.
		_ = json.Unmarshal(data, &entries)
	}
	entries = append(entries, e)

	dir := filepath.Dir(l.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("runlog.Append: %w", err)
		}
	}
	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("runlog.Append: %w", err)
	}
	if err := os.WriteFile(l.path, out, 0o644); err != nil {
		return fmt.Errorf("runlog.Append: %w", err)
	}
	return nil
}

// Read returns all entries currently in the log. A missing file yields an
// empty slice.
func (l *Log) Read() ([]Entry, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("runlog.Read: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("runlog.Read: parse %s: %w", l.path, err)
	}
	return entries, nil
}
