package generate

import (
	"regexp"
	"strings"
)

// Models wrap their document in markdown fences, lead-in commentary, or
// nothing at all. The fence patterns are tried first; the DOCTYPE/html
// scan handles bare documents with surrounding prose.
var fencePatterns = []*regexp.Regexp{
	regexp.MustCompile("(?is)```html\\s*(.*?)```"),
	regexp.MustCompile("(?is)```\\s*(<!DOCTYPE.*?)```"),
	regexp.MustCompile("(?is)```\\s*(<html.*?)```"),
}

var (
	docStart = regexp.MustCompile(`(?i)<!DOCTYPE|<html`)
	docEnd   = regexp.MustCompile(`(?i)</html>`)
)

// ExtractDocument pulls the single embedded HTML document out of a model
// reply, tolerating code-fence wrapping and surrounding commentary. The
// extracted text is identical regardless of the wrapping style used.
//
// Returns ErrNoDocument when the reply contains no document at all.
func ExtractDocument(response string) (string, error) {
	for _, pattern := range fencePatterns {
		if m := pattern.FindStringSubmatch(response); m != nil {
			return strings.TrimSpace(m[1]), nil
		}
	}

	loc := docStart.FindStringIndex(response)
	if loc == nil {
		return "", ErrNoDocument
	}

	doc := response[loc[0]:]
	// Trailing commentary after the document is dropped; a missing closing
	// tag is left for ValidateComplete to classify as truncation. The
	// search runs on doc itself: an offset found in a lowercased copy can
	// be wrong, since lowercasing changes the byte length of some runes.
	if ends := docEnd.FindAllStringIndex(doc, -1); ends != nil {
		doc = doc[:ends[len(ends)-1][1]]
	}

	return strings.TrimSpace(doc), nil
}

// ValidateComplete checks that the document is syntactically complete: it
// must open with a root markup tag and close it. Nothing more is promised
// about the contents.
func ValidateComplete(doc string) error {
	lower := strings.ToLower(doc)
	if !strings.HasPrefix(lower, "<!doctype") && !strings.HasPrefix(lower, "<html") {
		return ErrNoDocument
	}
	if !strings.Contains(lower, "</html>") {
		return ErrIncompleteDocument
	}
	return nil
}
