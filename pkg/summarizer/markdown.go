package summarizer

import (
	"fmt"
	"strings"
)

// NewMarkdownFormatter returns a Formatter that renders the per-pair
// results as a markdown table with a totals line.
func NewMarkdownFormatter() Formatter {
	return FormatFunc(formatMarkdown)
}

func formatMarkdown(summary *Summary) string {
	var b strings.Builder

	b.WriteString("# Benchmark Run Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", summary.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("| Application | Model | Status | Detail |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, r := range summary.Results {
		detail := r.Detail
		if detail == "" {
			detail = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			r.App, r.Model, r.Status, escapePipes(detail))
	}

	ok, failed, skipped := summary.Counts()
	fmt.Fprintf(&b, "\nTotal: %d ok, %d failed, %d skipped\n", ok, failed, skipped)

	return b.String()
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
