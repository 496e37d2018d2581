package ports

// PlaceholderRenderer produces a stand-in image for an artifact whose render
// failed, so the gallery still has something to link to.
type PlaceholderRenderer interface {
	// RenderPlaceholder returns PNG bytes with exactly the viewport's pixel
	// dimensions, labeled with the application and model identifiers and a
	// short reason.
	RenderPlaceholder(viewport Viewport, appName, modelLabel, reason string) ([]byte, error)
}
