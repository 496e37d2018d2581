package ports

import (
	"context"
)

// Screenshotter abstracts headless-browser screenshot capture.
type Screenshotter interface {
	// CaptureURL loads the URL in a rendering context sized to exactly
	// viewport width x height CSS pixels, waits for the load event plus
	// the settle delay, and returns the rendered viewport as PNG bytes.
	CaptureURL(ctx context.Context, url string, viewport Viewport, opts CaptureOptions) ([]byte, error)
}

// Viewport is a fixed pixel width/height pair. It must match the dimensions
// used for the original reference screenshot so renders stay comparable.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CaptureOptions configures a single capture.
type CaptureOptions struct {
	// SettleDelayMs is how long to wait after the load event before
	// capturing, so fonts and animations can stabilize.
	SettleDelayMs int

	// TimeoutMs bounds navigation plus settle plus capture.
	TimeoutMs int

	// ChromePath overrides the browser executable (falls back to
	// CHROME_PATH env, then system default).
	ChromePath string
}
