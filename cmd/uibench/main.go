// Package main provides the CLI entry point for uibench.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/uibench/pkg/adapters/chromeshot"
	"github.com/user/uibench/pkg/adapters/ggplaceholder"
	"github.com/user/uibench/pkg/adapters/httpserve"
	"github.com/user/uibench/pkg/adapters/logger"
	"github.com/user/uibench/pkg/adapters/openrouter"
	"github.com/user/uibench/pkg/adapters/osfilesystem"
	"github.com/user/uibench/pkg/config"
	"github.com/user/uibench/pkg/naming"
	"github.com/user/uibench/pkg/orchestrator"
	"github.com/user/uibench/pkg/pipeline"
	"github.com/user/uibench/pkg/ports"
	"github.com/user/uibench/pkg/stages/capture"
	"github.com/user/uibench/pkg/stages/gallery"
	"github.com/user/uibench/pkg/stages/generate"
	"github.com/user/uibench/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Run      RunCmd      `cmd:"" help:"Run the full benchmark batch: generate, capture and gallery."`
	Generate GenerateCmd `cmd:"" help:"Generate one interface artifact."`
	Capture  CaptureCmd  `cmd:"" help:"Capture screenshots for existing artifacts."`
	Gallery  GalleryCmd  `cmd:"" help:"Rebuild the gallery from existing outputs."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// RunCmd defines the run subcommand.
type RunCmd struct {
	Models []string `arg:"" optional:"" help:"Model identifiers (override configured models)."`

	Config string   `short:"c" help:"YAML configuration file path."`
	App    []string `short:"a" help:"Limit the batch to these application names."`

	// Output locations
	Outputs *string `help:"Outputs directory (default: outputs)."`
	Gallery *string `help:"Gallery document path (default: index.html)."`

	// Generation options
	MaxTokens *int `help:"Output token ceiling for generation (default: 16000)."`

	// Capture options
	SettleDelayMs    *int   `help:"Delay after page load before capture in milliseconds (default: 500)."`
	CaptureTimeoutMs *int   `help:"Per-capture timeout in milliseconds (default: 30000)."`
	ChromePath       string `help:"Path to Chrome executable (falls back to CHROME_PATH env, then system default)."`
	NoPlaceholder    bool   `help:"Do not record placeholder images for failed renders."`

	// Gallery options
	NoGallery bool `help:"Skip gallery assembly."`

	// Batch options
	Workers *int   `short:"w" help:"Number of parallel pipeline instances (default: 1)."`
	Summary string `short:"s" help:"Output execution summary to file (Markdown format)."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// GenerateCmd defines the generate subcommand.
type GenerateCmd struct {
	App   string `arg:"" help:"Application name (e.g. \"Microsoft Word\")."`
	Model string `arg:"" help:"Provider-qualified model identifier."`

	Config    string  `short:"c" help:"YAML configuration file path."`
	Outputs   *string `help:"Outputs directory (default: outputs)."`
	MaxTokens *int    `help:"Output token ceiling for generation (default: 16000)."`

	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// CaptureCmd defines the capture subcommand.
type CaptureCmd struct {
	Config string   `short:"c" help:"YAML configuration file path."`
	App    []string `short:"a" help:"Limit the batch to these application names."`

	Outputs          *string `help:"Outputs directory (default: outputs)."`
	Force            bool    `short:"f" help:"Recapture even when the screenshot already exists."`
	SettleDelayMs    *int    `help:"Delay after page load before capture in milliseconds (default: 500)."`
	CaptureTimeoutMs *int    `help:"Per-capture timeout in milliseconds (default: 30000)."`
	ChromePath       string  `help:"Path to Chrome executable (falls back to CHROME_PATH env, then system default)."`
	NoPlaceholder    bool    `help:"Do not record placeholder images for failed renders."`

	Workers *int   `short:"w" help:"Number of parallel pipeline instances (default: 1)."`
	Summary string `short:"s" help:"Output execution summary to file (Markdown format)."`

	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// GalleryCmd defines the gallery subcommand.
type GalleryCmd struct {
	Config  string  `short:"c" help:"YAML configuration file path."`
	Outputs *string `help:"Outputs directory (default: outputs)."`
	Gallery *string `help:"Gallery document path (default: index.html)."`

	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("uibench"),
		kong.Description("Benchmark multimodal models by regenerating application interfaces from screenshots."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// loadConfig loads the configuration file when given, otherwise defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// buildLogger creates the CLI logger from the shared logging flags.
func buildLogger(quiet bool, level string) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	return ctx, cancel
}

// filterApplications keeps only the named applications, in config order.
func filterApplications(cfg config.Config, names []string) (config.Config, error) {
	if len(names) == 0 {
		return cfg, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.ToLower(n)] = true
	}
	var kept []config.Application
	for _, app := range cfg.Applications {
		if wanted[strings.ToLower(app.Name)] {
			kept = append(kept, app)
			delete(wanted, strings.ToLower(app.Name))
		}
	}
	for n := range wanted {
		return cfg, fmt.Errorf("unknown application: %q", n)
	}
	cfg.Applications = kept
	return cfg, nil
}

// newInferenceClient builds the OpenRouter adapter from the configuration.
func newInferenceClient(cfg config.Config) (ports.InferenceClient, error) {
	apiKey, err := config.APIKey()
	if err != nil {
		return nil, err
	}
	return openrouter.New(openrouter.Options{
		Endpoint:   cfg.Inference.Endpoint,
		APIKey:     apiKey,
		Referer:    cfg.Inference.Referer,
		Title:      cfg.Inference.Title,
		Timeout:    time.Duration(cfg.Inference.TimeoutMs) * time.Millisecond,
		MaxRetries: cfg.Inference.MaxRetries,
	}), nil
}

// writeSummary writes the markdown summary when a path was requested.
func writeSummary(log ports.Logger, path string, summary *summarizer.Summary) {
	if path == "" {
		return
	}
	writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter())
	if err := writer.Write(path, summary); err != nil {
		log.Warn(l10n.F("Failed to write summary: %s", err))
		return
	}
	log.Info(l10n.F("Summary saved to %s", path))
}

// batchError converts failed pairs into a CLI error so the exit code
// reflects the batch outcome.
func batchError(summary *summarizer.Summary) error {
	_, failed, _ := summary.Counts()
	if failed == 0 {
		return nil
	}
	return errors.New(l10n.F("%d of %d pairs failed", failed, len(summary.Results)))
}

// Run executes the run command.
func (cmd *RunCmd) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	if cmd.Outputs != nil {
		cfg.OutputsDir = *cmd.Outputs
	}
	if cmd.Gallery != nil {
		cfg.GalleryPath = *cmd.Gallery
	}
	if cmd.MaxTokens != nil {
		cfg.Inference.MaxTokens = *cmd.MaxTokens
	}
	if cmd.SettleDelayMs != nil {
		cfg.Capture.SettleDelayMs = *cmd.SettleDelayMs
	}
	if cmd.CaptureTimeoutMs != nil {
		cfg.Capture.TimeoutMs = *cmd.CaptureTimeoutMs
	}
	if cmd.ChromePath != "" {
		cfg.Capture.ChromePath = cmd.ChromePath
	}
	if cmd.NoPlaceholder {
		cfg.Capture.Placeholder = false
	}
	if cmd.Workers != nil {
		cfg.Workers = *cmd.Workers
	}
	if len(cmd.Models) > 0 {
		cfg.Models = cmd.Models
	}
	if len(cfg.Models) == 0 {
		return errors.New(l10n.T("at least one model is required"))
	}
	cfg, err = filterApplications(cfg, cmd.App)
	if err != nil {
		return err
	}

	log := buildLogger(cmd.Quiet, cmd.LogLevel)

	ctx, cancel := signalContext(log)
	defer cancel()

	client, err := newInferenceClient(cfg)
	if err != nil {
		return err
	}

	fs := osfilesystem.New()
	shooter := chromeshot.New()
	renderer := ggplaceholder.New()
	// The server is rooted at the outputs tree; capture URLs are resolved
	// relative to it, so an absolute outputs path works too.
	server := httpserve.New(cfg.Serve.Host, cfg.Serve.Port, cfg.OutputsDir)

	generateStage := generate.New(client, fs, log)
	captureStage := capture.New(shooter, renderer, fs, log, ports.CaptureOptions{
		SettleDelayMs: cfg.Capture.SettleDelayMs,
		TimeoutMs:     cfg.Capture.TimeoutMs,
		ChromePath:    cfg.Capture.ChromePath,
	})
	galleryStage := gallery.New(fs, log)

	if !cmd.NoGallery {
		if err := gallery.Scaffold(fs, cfg.GalleryPath, applicationNames(cfg)); err != nil {
			return fmt.Errorf("scaffold gallery: %w", err)
		}
	}

	orch := orchestrator.New(generateStage, captureStage, galleryStage, server, fs, log)

	orchConfig := cfg.ToOrchestratorConfig()
	orchConfig.UpdateGallery = !cmd.NoGallery

	summary, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	writeSummary(log, cmd.Summary, summary)
	return batchError(summary)
}

// Run executes the generate command.
func (cmd *GenerateCmd) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	if cmd.Outputs != nil {
		cfg.OutputsDir = *cmd.Outputs
	}
	if cmd.MaxTokens != nil {
		cfg.Inference.MaxTokens = *cmd.MaxTokens
	}

	app, err := cfg.ApplicationByName(cmd.App)
	if err != nil {
		return err
	}

	log := buildLogger(cmd.Quiet, cmd.LogLevel)

	ctx, cancel := signalContext(log)
	defer cancel()

	client, err := newInferenceClient(cfg)
	if err != nil {
		return err
	}

	fs := osfilesystem.New()
	stage := generate.New(client, fs, log)

	outputPath := naming.ArtifactPath(cfg.OutputsDir, app.Name, cmd.Model)
	log.Info(l10n.F("Generating %s with %s", app.Name, cmd.Model))
	result, err := stage.Execute(ctx, pipeline.GenerateInput{
		AppName:        app.Name,
		ImagePath:      app.Reference,
		Model:          cmd.Model,
		PromptTemplate: cfg.Inference.PromptTemplate,
		MaxTokens:      cfg.Inference.MaxTokens,
		OutputPath:     outputPath,
	})
	if err != nil {
		return err
	}

	log.Info(l10n.F("Artifact saved to %s", result.OutputPath))
	return nil
}

// Run executes the capture command.
func (cmd *CaptureCmd) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	if cmd.Outputs != nil {
		cfg.OutputsDir = *cmd.Outputs
	}
	if cmd.SettleDelayMs != nil {
		cfg.Capture.SettleDelayMs = *cmd.SettleDelayMs
	}
	if cmd.CaptureTimeoutMs != nil {
		cfg.Capture.TimeoutMs = *cmd.CaptureTimeoutMs
	}
	if cmd.ChromePath != "" {
		cfg.Capture.ChromePath = cmd.ChromePath
	}
	if cmd.NoPlaceholder {
		cfg.Capture.Placeholder = false
	}
	if cmd.Workers != nil {
		cfg.Workers = *cmd.Workers
	}
	cfg, err = filterApplications(cfg, cmd.App)
	if err != nil {
		return err
	}

	log := buildLogger(cmd.Quiet, cmd.LogLevel)

	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()
	shooter := chromeshot.New()
	renderer := ggplaceholder.New()
	server := httpserve.New(cfg.Serve.Host, cfg.Serve.Port, cfg.OutputsDir)

	captureStage := capture.New(shooter, renderer, fs, log, ports.CaptureOptions{
		SettleDelayMs: cfg.Capture.SettleDelayMs,
		TimeoutMs:     cfg.Capture.TimeoutMs,
		ChromePath:    cfg.Capture.ChromePath,
	})
	generateStage := generate.New(nil, fs, log)
	galleryStage := gallery.New(fs, log)

	orch := orchestrator.New(generateStage, captureStage, galleryStage, server, fs, log)

	orchConfig := cfg.ToOrchestratorConfig()
	orchConfig.ForceCapture = cmd.Force
	orchConfig.UpdateGallery = false

	summary, err := orch.RunCapture(ctx, orchConfig)
	if err != nil {
		return err
	}

	writeSummary(log, cmd.Summary, summary)
	return batchError(summary)
}

// Run executes the gallery command. It scaffolds the document when missing
// and inserts one entry per artifact that has a screenshot.
func (cmd *GalleryCmd) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	if cmd.Outputs != nil {
		cfg.OutputsDir = *cmd.Outputs
	}
	if cmd.Gallery != nil {
		cfg.GalleryPath = *cmd.Gallery
	}

	log := buildLogger(cmd.Quiet, cmd.LogLevel)

	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()
	stage := gallery.New(fs, log)

	if err := gallery.Scaffold(fs, cfg.GalleryPath, applicationNames(cfg)); err != nil {
		return fmt.Errorf("scaffold gallery: %w", err)
	}

	inserted := 0
	for _, app := range cfg.Applications {
		pattern := filepath.Join(cfg.OutputsDir, naming.AppDir(app.Name), "*.html")
		artifacts, err := fs.Glob(pattern)
		if err != nil {
			return fmt.Errorf("discover artifacts: %w", err)
		}
		for _, artifact := range artifacts {
			screenshot := strings.TrimSuffix(artifact, ".html") + ".png"
			ok, err := fs.Exists(screenshot)
			if err != nil {
				return err
			}
			if !ok {
				log.Warn(l10n.F("Skipping %s: %s", artifact, l10n.T("screenshot not captured yet")))
				continue
			}
			token := strings.TrimSuffix(filepath.Base(artifact), ".html")
			result, err := stage.Execute(ctx, pipeline.GalleryInput{
				GalleryPath:    cfg.GalleryPath,
				SectionID:      naming.AppDir(app.Name),
				Model:          token,
				ArtifactHref:   filepath.ToSlash(artifact),
				ScreenshotHref: filepath.ToSlash(screenshot),
			})
			if err != nil {
				return err
			}
			if result.Inserted {
				inserted++
			}
		}
	}

	log.Info(l10n.F("Gallery updated: %d entries added", inserted))
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("uibench version %s", version))
	return nil
}

func applicationNames(cfg config.Config) []string {
	names := make([]string, 0, len(cfg.Applications))
	for _, app := range cfg.Applications {
		names = append(names, app.Name)
	}
	return names
}
