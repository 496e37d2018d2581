package generate

import "errors"

var (
	// ErrNoDocument is returned when a reply contains no HTML document at
	// all. Retrying is unlikely to help without changing the prompt.
	ErrNoDocument = errors.New("generate: no HTML document found in response")

	// ErrIncompleteDocument is returned when the extracted document has no
	// closing root tag, which usually means the reply was truncated by the
	// output-length ceiling. Retrying with the same inputs is likely to
	// succeed.
	ErrIncompleteDocument = errors.New("generate: document is missing its closing root tag")
)
