package ggplaceholder

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/user/uibench/pkg/ports"
)

func TestRenderPlaceholder_ExactViewportDimensions(t *testing.T) {
	r := New()

	viewports := []ports.Viewport{
		{Width: 2404, Height: 1840},
		{Width: 2048, Height: 1062},
		{Width: 300, Height: 200},
	}

	for _, vp := range viewports {
		data, err := r.RenderPlaceholder(vp, "Spotify", "Vendor Model X", "render failed")
		if err != nil {
			t.Fatalf("render %dx%d: %v", vp.Width, vp.Height, err)
		}

		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode %dx%d: %v", vp.Width, vp.Height, err)
		}
		if cfg.Width != vp.Width || cfg.Height != vp.Height {
			t.Errorf("placeholder dimensions = %dx%d, want %dx%d",
				cfg.Width, cfg.Height, vp.Width, vp.Height)
		}
	}
}

func TestRenderPlaceholder_InvalidViewport(t *testing.T) {
	r := New()
	if _, err := r.RenderPlaceholder(ports.Viewport{}, "App", "Model", ""); err == nil {
		t.Error("expected an error for a zero viewport")
	}
}

func TestRenderPlaceholder_EmptyReason(t *testing.T) {
	r := New()
	data, err := r.RenderPlaceholder(ports.Viewport{Width: 640, Height: 480}, "App", "Model", "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty image data")
	}
}
