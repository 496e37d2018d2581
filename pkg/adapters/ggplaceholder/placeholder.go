// Package ggplaceholder renders "capture failed" placeholder images using
// the gg library, so the gallery has something to show for artifacts whose
// render failed.
package ggplaceholder

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/uibench/pkg/ports"
)

// logicalWidth is the drawing width before upscaling to the viewport.
// Drawing small and scaling up keeps the default bitmap font legible at
// the large reference viewports.
const logicalWidth = 640

// Renderer implements ports.PlaceholderRenderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Ensure Renderer implements ports.PlaceholderRenderer
var _ ports.PlaceholderRenderer = (*Renderer)(nil)

// RenderPlaceholder returns PNG bytes with exactly the viewport's pixel
// dimensions, labeled with the application, model and failure reason.
func (r *Renderer) RenderPlaceholder(viewport ports.Viewport, appName, modelLabel, reason string) ([]byte, error) {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", viewport.Width, viewport.Height)
	}

	logicalHeight := logicalWidth * viewport.Height / viewport.Width
	if logicalHeight < 1 {
		logicalHeight = 1
	}

	dc := gg.NewContext(logicalWidth, logicalHeight)

	// Dark backdrop with a thin frame
	dc.SetRGB(0.12, 0.12, 0.16)
	dc.Clear()
	dc.SetRGB(0.45, 0.45, 0.55)
	dc.SetLineWidth(2)
	dc.DrawRectangle(1, 1, float64(logicalWidth)-2, float64(logicalHeight)-2)
	dc.Stroke()

	lines := []string{"capture failed", appName, modelLabel}
	if reason != "" {
		lines = append(lines, reason)
	}

	dc.SetRGB(0.9, 0.9, 0.9)
	cx := float64(logicalWidth) / 2
	lineGap := 18.0
	startY := float64(logicalHeight)/2 - lineGap*float64(len(lines)-1)/2
	for i, line := range lines {
		dc.DrawStringAnchored(line, cx, startY+lineGap*float64(i), 0.5, 0.5)
	}

	// Upscale to the exact viewport so dimensions match real captures.
	dst := image.NewRGBA(image.Rect(0, 0, viewport.Width, viewport.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), dc.Image(), dc.Image().Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}

	return buf.Bytes(), nil
}
