package pipeline

import (
	"github.com/user/uibench/pkg/ports"
)

// =============================================================================
// Generate Stage Types
// =============================================================================

// GenerateInput contains parameters for one interface generation.
type GenerateInput struct {
	AppName        string // Application name, e.g. "Microsoft Word"
	ImagePath      string // Reference screenshot path
	Model          string // Provider-qualified model identifier
	PromptTemplate string // Instruction template; the app name is substituted in
	MaxTokens      int    // Output token ceiling for the inference call
	OutputPath     string // Deterministic artifact path (overwritten if present)
}

// GenerateResult contains the generation output.
type GenerateResult struct {
	OutputPath string
	Size       int // Bytes written
}

// =============================================================================
// Capture Stage Types
// =============================================================================

// CaptureInput contains parameters for one screenshot capture.
type CaptureInput struct {
	AppName      string
	Model        string
	ArtifactPath string         // Generated HTML artifact (must exist)
	URL          string         // Where the artifact is served during capture
	Viewport     ports.Viewport // Must match the reference screenshot exactly
	OutputPath   string         // Screenshot path mirroring the artifact path

	SettleDelayMs int  // Post-load wait before capturing
	TimeoutMs     int  // Navigation + capture budget
	Force         bool // Overwrite an existing screenshot (e.g. stale viewport)
	Placeholder   bool // Record a placeholder image when the render fails
}

// CaptureResult contains the capture output.
type CaptureResult struct {
	OutputPath  string
	Width       int
	Height      int
	Skipped     bool   // Screenshot already existed and Force was off
	SkipReason  string // Human-readable reason when Skipped
	Placeholder bool   // A placeholder was written instead of a real render
}

// =============================================================================
// Gallery Stage Types
// =============================================================================

// GalleryInput contains parameters for one gallery insertion.
type GalleryInput struct {
	GalleryPath    string // Static comparison page
	SectionID      string // Application section id, e.g. "jira"
	Model          string // Provider-qualified model identifier
	ArtifactHref   string // Link target for the generated artifact
	ScreenshotHref string // Link target for the captured screenshot
}

// GalleryResult contains the gallery output.
type GalleryResult struct {
	Inserted bool // False when the entry was already present (idempotent skip)
}
