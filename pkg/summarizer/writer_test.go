package summarizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriter_CreatesParentDirectories(t *testing.T) {
	s := NewSummary()
	s.Add(PairResult{App: "Jira", Model: "a/x", Status: StatusOK})

	path := filepath.Join(t.TempDir(), "reports", "run.md")
	w := NewWriter(NewMarkdownFormatter())
	if err := w.Write(path, s); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "| Jira | a/x | ok | - |") {
		t.Errorf("written summary missing result row:\n%s", data)
	}
}
