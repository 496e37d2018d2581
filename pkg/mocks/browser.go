package mocks

import (
	"context"

	"github.com/user/uibench/pkg/ports"
)

// Screenshotter is a mock implementation of ports.Screenshotter.
type Screenshotter struct {
	CaptureURLFunc func(ctx context.Context, url string, viewport ports.Viewport, opts ports.CaptureOptions) ([]byte, error)

	// URLs records every captured URL (for test verification).
	URLs []string
}

func (m *Screenshotter) CaptureURL(ctx context.Context, url string, viewport ports.Viewport, opts ports.CaptureOptions) ([]byte, error) {
	m.URLs = append(m.URLs, url)
	if m.CaptureURLFunc != nil {
		return m.CaptureURLFunc(ctx, url, viewport, opts)
	}
	return []byte("png"), nil
}

var _ ports.Screenshotter = (*Screenshotter)(nil)
