package mocks

import "github.com/user/uibench/pkg/ports"

// PlaceholderRenderer is a mock implementation of ports.PlaceholderRenderer.
type PlaceholderRenderer struct {
	RenderPlaceholderFunc func(viewport ports.Viewport, appName, modelLabel, reason string) ([]byte, error)
}

func (m *PlaceholderRenderer) RenderPlaceholder(viewport ports.Viewport, appName, modelLabel, reason string) ([]byte, error) {
	if m.RenderPlaceholderFunc != nil {
		return m.RenderPlaceholderFunc(viewport, appName, modelLabel, reason)
	}
	return []byte("placeholder"), nil
}

var _ ports.PlaceholderRenderer = (*PlaceholderRenderer)(nil)
