package summarizer

import "testing"

func TestSummary_Counts(t *testing.T) {
	s := NewSummary()
	s.Add(PairResult{App: "Jira", Model: "a/x", Status: StatusOK})
	s.Add(PairResult{App: "Jira", Model: "b/y", Status: StatusFailed, Detail: "inference: rate limited"})
	s.Add(PairResult{App: "Spotify", Model: "a/x", Status: StatusOK})
	s.Add(PairResult{App: "Spotify", Model: "b/y", Status: StatusSkipped, Detail: "screenshot already exists"})

	ok, failed, skipped := s.Counts()
	if ok != 2 || failed != 1 || skipped != 1 {
		t.Errorf("Counts() = %d, %d, %d; want 2, 1, 1", ok, failed, skipped)
	}
}

func TestSummary_Empty(t *testing.T) {
	s := NewSummary()
	ok, failed, skipped := s.Counts()
	if ok != 0 || failed != 0 || skipped != 0 {
		t.Errorf("Counts() on empty summary = %d, %d, %d", ok, failed, skipped)
	}
	if s.GeneratedAt.IsZero() {
		t.Error("GeneratedAt must be set")
	}
}
