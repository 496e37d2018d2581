// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/uibench/pkg/orchestrator"
	"github.com/user/uibench/pkg/ports"
	"github.com/user/uibench/pkg/stages/generate"
)

// Config represents the full configuration for uibench.
type Config struct {
	// Output locations
	OutputsDir  string `yaml:"outputs_dir"`
	GalleryPath string `yaml:"gallery"`

	// Benchmark targets
	Applications []Application `yaml:"applications"`
	Models       []string      `yaml:"models"`

	// Stage settings
	Inference InferenceConfig `yaml:"inference"`
	Capture   CaptureConfig   `yaml:"capture"`
	Serve     ServeConfig     `yaml:"serve"`

	// Batch execution
	Workers int `yaml:"workers"`
}

// Application describes one benchmarked UI target.
type Application struct {
	Name      string         `yaml:"name"`      // Display name, e.g. "Microsoft Word"
	Reference string         `yaml:"reference"` // Reference screenshot path
	Viewport  ports.Viewport `yaml:"viewport"`  // Must match the reference screenshot
}

// InferenceConfig holds settings for the model-serving endpoint.
type InferenceConfig struct {
	Endpoint       string `yaml:"endpoint"`
	MaxTokens      int    `yaml:"max_tokens"`
	TimeoutMs      int    `yaml:"timeout_ms"`
	MaxRetries     int    `yaml:"max_retries"`
	PromptTemplate string `yaml:"prompt_template"`
	Referer        string `yaml:"referer"` // HTTP-Referer attribution header
	Title          string `yaml:"title"`   // X-Title attribution header
}

// CaptureConfig holds settings for screenshot capture.
type CaptureConfig struct {
	SettleDelayMs int    `yaml:"settle_delay_ms"`
	TimeoutMs     int    `yaml:"timeout_ms"`
	ChromePath    string `yaml:"chrome_path"`
	Placeholder   bool   `yaml:"placeholder"` // Record a placeholder image on render failure
}

// ServeConfig holds settings for the transient capture file server.
type ServeConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Defaults returns a Config with default values. The application set and
// viewports match the reference screenshots the benchmark was built from.
func Defaults() Config {
	return Config{
		OutputsDir:  "outputs",
		GalleryPath: "index.html",

		Applications: []Application{
			{Name: "Google Sheets", Reference: "references/google_sheets.png", Viewport: ports.Viewport{Width: 2404, Height: 1126}},
			{Name: "Jira", Reference: "references/jira.png", Viewport: ports.Viewport{Width: 2048, Height: 1062}},
			{Name: "Microsoft Word", Reference: "references/microsoft_word.png", Viewport: ports.Viewport{Width: 2400, Height: 1206}},
			{Name: "Spotify", Reference: "references/spotify.png", Viewport: ports.Viewport{Width: 2404, Height: 1840}},
			{Name: "VS Code", Reference: "references/vs_code.png", Viewport: ports.Viewport{Width: 2404, Height: 1202}},
		},

		Inference: InferenceConfig{
			Endpoint:       "https://openrouter.ai/api/v1/chat/completions",
			MaxTokens:      16000,
			TimeoutMs:      300000,
			MaxRetries:     3,
			PromptTemplate: generate.DefaultPromptTemplate,
			Referer:        "https://github.com/benchmarking",
			Title:          "LLM Interface Benchmark",
		},

		Capture: CaptureConfig{
			SettleDelayMs: 500,
			TimeoutMs:     30000,
			Placeholder:   true,
		},

		Serve: ServeConfig{
			Host: "127.0.0.1",
			Port: 4141,
		},

		Workers: 1,
	}
}

// FallbackViewport is used for applications without a configured viewport.
var FallbackViewport = ports.Viewport{Width: 1920, Height: 1080}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplicationByName returns the application descriptor matching name.
func (c Config) ApplicationByName(name string) (Application, error) {
	for _, app := range c.Applications {
		if app.Name == name {
			return app, nil
		}
	}
	return Application{}, fmt.Errorf("unknown application: %q", name)
}

// ViewportFor returns the configured viewport for an application name, or
// FallbackViewport when the application is not configured.
func (c Config) ViewportFor(name string) ports.Viewport {
	if app, err := c.ApplicationByName(name); err == nil {
		return app.Viewport
	}
	return FallbackViewport
}

// ToOrchestratorConfig converts the configuration into the orchestrator's
// batch configuration.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	apps := make([]orchestrator.Application, 0, len(c.Applications))
	for _, app := range c.Applications {
		viewport := app.Viewport
		if viewport.Width <= 0 || viewport.Height <= 0 {
			viewport = FallbackViewport
		}
		apps = append(apps, orchestrator.Application{
			Name:      app.Name,
			Reference: app.Reference,
			Viewport:  viewport,
		})
	}

	return orchestrator.Config{
		Applications:     apps,
		Models:           c.Models,
		OutputsDir:       c.OutputsDir,
		GalleryPath:      c.GalleryPath,
		PromptTemplate:   c.Inference.PromptTemplate,
		MaxTokens:        c.Inference.MaxTokens,
		SettleDelayMs:    c.Capture.SettleDelayMs,
		CaptureTimeoutMs: c.Capture.TimeoutMs,
		Placeholder:      c.Capture.Placeholder,
		UpdateGallery:    true,
		Workers:          c.Workers,
	}
}

// apiKeyEnvVars lists the environment variables checked for the endpoint
// credential, in priority order. The legacy names are kept for
// compatibility with earlier benchmark runs.
var apiKeyEnvVars = []string{"OPENROUTER_API_KEY", "OPEN_ROUTER_KEY", "OPEN_ROUTER_API_KEY"}

// APIKey resolves the inference endpoint credential from the environment.
func APIKey() (string, error) {
	for _, name := range apiKeyEnvVars {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("OPENROUTER_API_KEY environment variable not set")
}
