package capture

import "errors"

var (
	// ErrArtifactMissing is returned when the generated HTML artifact does
	// not exist at the expected path.
	ErrArtifactMissing = errors.New("capture: artifact not found")

	// ErrRenderFailed is returned when the artifact fails to load or
	// renders at the wrong size. The artifact file is left in place for
	// manual inspection.
	ErrRenderFailed = errors.New("capture: artifact failed to render")
)
