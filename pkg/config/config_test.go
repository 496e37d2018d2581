package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/uibench/pkg/ports"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.OutputsDir != "outputs" {
		t.Errorf("OutputsDir = %q", cfg.OutputsDir)
	}
	if cfg.GalleryPath != "index.html" {
		t.Errorf("GalleryPath = %q", cfg.GalleryPath)
	}
	if len(cfg.Applications) != 5 {
		t.Fatalf("expected 5 applications, got %d", len(cfg.Applications))
	}
	if cfg.Inference.MaxTokens != 16000 {
		t.Errorf("MaxTokens = %d", cfg.Inference.MaxTokens)
	}
	if cfg.Inference.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d", cfg.Inference.MaxRetries)
	}
	if cfg.Capture.SettleDelayMs != 500 {
		t.Errorf("SettleDelayMs = %d", cfg.Capture.SettleDelayMs)
	}
	if cfg.Serve.Port != 4141 {
		t.Errorf("Serve.Port = %d", cfg.Serve.Port)
	}
}

func TestViewportFor(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		app  string
		want ports.Viewport
	}{
		{"Google Sheets", ports.Viewport{Width: 2404, Height: 1126}},
		{"Jira", ports.Viewport{Width: 2048, Height: 1062}},
		{"Microsoft Word", ports.Viewport{Width: 2400, Height: 1206}},
		{"Spotify", ports.Viewport{Width: 2404, Height: 1840}},
		{"VS Code", ports.Viewport{Width: 2404, Height: 1202}},
		{"Unknown App", FallbackViewport},
	}

	for _, tt := range tests {
		if got := cfg.ViewportFor(tt.app); got != tt.want {
			t.Errorf("ViewportFor(%q) = %+v, want %+v", tt.app, got, tt.want)
		}
	}
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uibench.yaml")
	yaml := `
outputs_dir: /tmp/bench
models:
  - vendor/model-x
  - other/model-y
inference:
  max_tokens: 8000
workers: 4
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.OutputsDir != "/tmp/bench" {
		t.Errorf("OutputsDir = %q", cfg.OutputsDir)
	}
	if len(cfg.Models) != 2 || cfg.Models[0] != "vendor/model-x" {
		t.Errorf("Models = %v", cfg.Models)
	}
	if cfg.Inference.MaxTokens != 8000 {
		t.Errorf("MaxTokens = %d", cfg.Inference.MaxTokens)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	// Untouched settings keep their defaults.
	if cfg.Capture.TimeoutMs != 30000 {
		t.Errorf("Capture.TimeoutMs = %d", cfg.Capture.TimeoutMs)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Models = []string{"vendor/model-x"}

	oc := cfg.ToOrchestratorConfig()
	if len(oc.Applications) != 5 {
		t.Fatalf("expected 5 applications, got %d", len(oc.Applications))
	}
	if oc.Applications[1].Name != "Jira" || oc.Applications[1].Viewport.Width != 2048 {
		t.Errorf("application mapping broken: %+v", oc.Applications[1])
	}
	if oc.MaxTokens != 16000 || oc.CaptureTimeoutMs != 30000 {
		t.Errorf("stage settings not carried: %+v", oc)
	}
	if !oc.UpdateGallery {
		t.Error("UpdateGallery must default to true")
	}
}

func TestToOrchestratorConfig_FallbackViewport(t *testing.T) {
	cfg := Defaults()
	cfg.Applications = []Application{{Name: "Bare", Reference: "references/bare.png"}}

	oc := cfg.ToOrchestratorConfig()
	if oc.Applications[0].Viewport != FallbackViewport {
		t.Errorf("viewport = %+v, want fallback", oc.Applications[0].Viewport)
	}
}

func TestAPIKey(t *testing.T) {
	for _, name := range apiKeyEnvVars {
		t.Setenv(name, "")
	}

	if _, err := APIKey(); err == nil {
		t.Error("expected an error when no key variable is set")
	}

	t.Setenv("OPEN_ROUTER_KEY", "legacy-key")
	key, err := APIKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "legacy-key" {
		t.Errorf("key = %q", key)
	}

	// The primary name wins over legacy names.
	t.Setenv("OPENROUTER_API_KEY", "primary-key")
	key, _ = APIKey()
	if key != "primary-key" {
		t.Errorf("key = %q, want primary-key", key)
	}
}
