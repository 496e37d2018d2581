// Package summarizer provides summary generation for benchmark batch runs.
package summarizer

import "time"

// PairStatus classifies the outcome of one (application, model) pipeline
// instance.
type PairStatus string

const (
	// StatusOK means the instance completed and its outputs exist.
	StatusOK PairStatus = "ok"
	// StatusFailed means the instance failed; sibling instances are
	// unaffected.
	StatusFailed PairStatus = "failed"
	// StatusSkipped means the instance had nothing to do (missing
	// artifact during a capture-only batch).
	StatusSkipped PairStatus = "skipped"
)

// PairResult records the outcome of one pipeline instance.
type PairResult struct {
	App    string
	Model  string
	Status PairStatus
	Detail string // Error text, skip reason, or note (e.g. "placeholder recorded")

	ArtifactPath   string
	ScreenshotPath string
	DurationMs     int
}

// Summary contains all per-pair results of a batch run.
type Summary struct {
	GeneratedAt time.Time
	Results     []PairResult
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Add appends one pair result.
func (s *Summary) Add(result PairResult) {
	s.Results = append(s.Results, result)
}

// Counts returns the number of ok, failed and skipped pairs.
func (s *Summary) Counts() (ok, failed, skipped int) {
	for _, r := range s.Results {
		switch r.Status {
		case StatusOK:
			ok++
		case StatusFailed:
			failed++
		case StatusSkipped:
			skipped++
		}
	}
	return ok, failed, skipped
}
