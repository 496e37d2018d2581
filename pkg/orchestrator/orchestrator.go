// Package orchestrator coordinates pipeline instances across the
// (application, model) matrix.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ideamans/go-l10n"
	"golang.org/x/sync/errgroup"

	"github.com/user/uibench/pkg/naming"
	"github.com/user/uibench/pkg/pipeline"
	"github.com/user/uibench/pkg/ports"
	"github.com/user/uibench/pkg/summarizer"
)

// Application describes one benchmark target.
type Application struct {
	Name      string
	Reference string
	Viewport  ports.Viewport
}

// Config contains all configuration for the orchestrator.
type Config struct {
	// Matrix
	Applications []Application
	Models       []string

	// Output locations
	OutputsDir  string
	GalleryPath string

	// Generation
	PromptTemplate string
	MaxTokens      int

	// Capture
	SettleDelayMs    int
	CaptureTimeoutMs int
	ForceCapture     bool
	Placeholder      bool

	// Gallery
	UpdateGallery bool

	// Parallelism across pipeline instances
	Workers int
}

// Orchestrator coordinates the execution of independent pipeline instances.
// Instances share nothing except the inference endpoint's rate limits and
// one file server scoped to the batch; a failing instance never aborts its
// siblings.
type Orchestrator struct {
	generateStage pipeline.Stage[pipeline.GenerateInput, pipeline.GenerateResult]
	captureStage  pipeline.Stage[pipeline.CaptureInput, pipeline.CaptureResult]
	galleryStage  pipeline.Stage[pipeline.GalleryInput, pipeline.GalleryResult]
	server        ports.FileServer
	fs            ports.FileSystem
	logger        ports.Logger
}

// New creates a new Orchestrator.
func New(
	generateStage pipeline.Stage[pipeline.GenerateInput, pipeline.GenerateResult],
	captureStage pipeline.Stage[pipeline.CaptureInput, pipeline.CaptureResult],
	galleryStage pipeline.Stage[pipeline.GalleryInput, pipeline.GalleryResult],
	server ports.FileServer,
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		generateStage: generateStage,
		captureStage:  captureStage,
		galleryStage:  galleryStage,
		server:        server,
		fs:            fs,
		logger:        logger,
	}
}

// Run executes generation and capture for every (application, model) pair,
// then gallery assembly for the pairs that completed, and returns a
// per-pair summary.
func (o *Orchestrator) Run(ctx context.Context, config Config) (*summarizer.Summary, error) {
	o.logger.Info(l10n.T("Starting benchmark batch"))

	type pair struct {
		app   Application
		model string
	}
	var pairs []pair
	for _, app := range config.Applications {
		for _, model := range config.Models {
			pairs = append(pairs, pair{app: app, model: model})
		}
	}

	if err := o.startServer(); err != nil {
		return nil, err
	}
	defer o.stopServer()

	results := make([]summarizer.PairResult, len(pairs))

	// Instances are independent; errors stay local to their slot, so the
	// group function never returns one (an errgroup error would cancel
	// siblings).
	g := &errgroup.Group{}
	g.SetLimit(workerCount(config.Workers))
	for i, p := range pairs {
		g.Go(func() error {
			results[i] = o.runPair(ctx, config, p.app, p.model)
			return nil
		})
	}
	g.Wait()

	// Gallery assembly mutates one shared document, so it runs serialized
	// after the parallel phase.
	if config.UpdateGallery {
		o.assembleGallery(ctx, config, results)
	}

	summary := summarizer.NewSummary()
	for _, r := range results {
		summary.Add(r)
	}
	ok, failed, skipped := summary.Counts()
	o.logger.Info(l10n.F("Batch completed: %d ok, %d failed, %d skipped", ok, failed, skipped))

	return summary, nil
}

// RunCapture executes a capture-only batch over every artifact found under
// the outputs tree, one instance per discovered (application, model token).
func (o *Orchestrator) RunCapture(ctx context.Context, config Config) (*summarizer.Summary, error) {
	type job struct {
		app      Application
		token    string
		artifact string
	}
	var jobs []job
	for _, app := range config.Applications {
		pattern := filepath.Join(config.OutputsDir, naming.AppDir(app.Name), "*.html")
		matches, err := o.fs.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("discover artifacts: %w", err)
		}
		for _, m := range matches {
			token := strings.TrimSuffix(filepath.Base(m), ".html")
			jobs = append(jobs, job{app: app, token: token, artifact: m})
		}
	}

	if err := o.startServer(); err != nil {
		return nil, err
	}
	defer o.stopServer()

	results := make([]summarizer.PairResult, len(jobs))

	g := &errgroup.Group{}
	g.SetLimit(workerCount(config.Workers))
	for i, j := range jobs {
		g.Go(func() error {
			results[i] = o.capturePair(ctx, config, j.app, j.token, j.artifact)
			return nil
		})
	}
	g.Wait()

	if config.UpdateGallery {
		o.assembleGallery(ctx, config, results)
	}

	summary := summarizer.NewSummary()
	for _, r := range results {
		summary.Add(r)
	}
	ok, failed, skipped := summary.Counts()
	o.logger.Info(l10n.F("Batch completed: %d ok, %d failed, %d skipped", ok, failed, skipped))

	return summary, nil
}

// runPair executes generation then capture for one pair. All failures are
// recorded in the result, never propagated.
func (o *Orchestrator) runPair(ctx context.Context, config Config, app Application, model string) summarizer.PairResult {
	start := time.Now()
	result := summarizer.PairResult{
		App:            app.Name,
		Model:          model,
		ArtifactPath:   naming.ArtifactPath(config.OutputsDir, app.Name, model),
		ScreenshotPath: naming.ScreenshotPath(config.OutputsDir, app.Name, model),
	}
	defer func() {
		result.DurationMs = int(time.Since(start).Milliseconds())
	}()

	o.logger.Info(l10n.F("Generating %s with %s", app.Name, model))
	_, err := o.generateStage.Execute(ctx, pipeline.GenerateInput{
		AppName:        app.Name,
		ImagePath:      app.Reference,
		Model:          model,
		PromptTemplate: config.PromptTemplate,
		MaxTokens:      config.MaxTokens,
		OutputPath:     result.ArtifactPath,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed %s/%s: %s", app.Name, model, err))
		result.Status = summarizer.StatusFailed
		result.Detail = err.Error()
		return result
	}

	capResult, err := o.captureStage.Execute(ctx, pipeline.CaptureInput{
		AppName:       app.Name,
		Model:         model,
		ArtifactPath:  result.ArtifactPath,
		URL:           o.artifactURL(config.OutputsDir, result.ArtifactPath),
		Viewport:      app.Viewport,
		OutputPath:    result.ScreenshotPath,
		SettleDelayMs: config.SettleDelayMs,
		TimeoutMs:     config.CaptureTimeoutMs,
		// A freshly generated artifact always replaces its screenshot.
		Force:       true,
		Placeholder: config.Placeholder,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed %s/%s: %s", app.Name, model, err))
		result.Status = summarizer.StatusFailed
		result.Detail = err.Error()
		if capResult.Placeholder {
			result.Detail += " (placeholder recorded)"
		}
		return result
	}

	result.Status = summarizer.StatusOK
	return result
}

// capturePair executes capture only, for one discovered artifact.
func (o *Orchestrator) capturePair(ctx context.Context, config Config, app Application, token, artifact string) summarizer.PairResult {
	start := time.Now()
	result := summarizer.PairResult{
		App:            app.Name,
		Model:          token,
		ArtifactPath:   artifact,
		ScreenshotPath: strings.TrimSuffix(artifact, ".html") + ".png",
	}
	defer func() {
		result.DurationMs = int(time.Since(start).Milliseconds())
	}()

	capResult, err := o.captureStage.Execute(ctx, pipeline.CaptureInput{
		AppName:       app.Name,
		Model:         token,
		ArtifactPath:  artifact,
		URL:           o.artifactURL(config.OutputsDir, artifact),
		Viewport:      app.Viewport,
		OutputPath:    result.ScreenshotPath,
		SettleDelayMs: config.SettleDelayMs,
		TimeoutMs:     config.CaptureTimeoutMs,
		Force:         config.ForceCapture,
		Placeholder:   config.Placeholder,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed %s/%s: %s", app.Name, token, err))
		result.Status = summarizer.StatusFailed
		result.Detail = err.Error()
		if capResult.Placeholder {
			result.Detail += " (placeholder recorded)"
		}
		return result
	}

	if capResult.Skipped {
		result.Status = summarizer.StatusSkipped
		result.Detail = capResult.SkipReason
		return result
	}

	result.Status = summarizer.StatusOK
	return result
}

// assembleGallery inserts one entry per completed pair, in deterministic
// order. A failed insertion downgrades only its own pair.
func (o *Orchestrator) assembleGallery(ctx context.Context, config Config, results []summarizer.PairResult) {
	for i := range results {
		r := &results[i]
		// Skipped pairs still have both outputs on disk, so they get a
		// card too.
		if r.Status == summarizer.StatusFailed {
			continue
		}
		_, err := o.galleryStage.Execute(ctx, pipeline.GalleryInput{
			GalleryPath:    config.GalleryPath,
			SectionID:      naming.AppDir(r.App),
			Model:          r.Model,
			ArtifactHref:   filepath.ToSlash(r.ArtifactPath),
			ScreenshotHref: filepath.ToSlash(r.ScreenshotPath),
		})
		if err != nil {
			o.logger.Error(l10n.F("Failed %s/%s: %s", r.App, r.Model, err))
			r.Status = summarizer.StatusFailed
			r.Detail = joinDetail(r.Detail, err.Error())
		}
	}
}

func (o *Orchestrator) startServer() error {
	if err := o.server.Start(); err != nil {
		return fmt.Errorf("start file server: %w", err)
	}
	o.logger.Info(l10n.F("Serving outputs at %s", o.server.BaseURL()))
	return nil
}

func (o *Orchestrator) stopServer() {
	o.server.Shutdown()
	o.logger.Debug(l10n.T("File server stopped"))
}

// artifactURL maps an artifact path to its URL under the file server,
// which is rooted at the outputs directory. Resolving relative to that
// root keeps the URL valid when the outputs directory is absolute.
func (o *Orchestrator) artifactURL(outputsDir, artifactPath string) string {
	rel, err := filepath.Rel(outputsDir, artifactPath)
	if err != nil {
		rel = artifactPath
	}
	return o.server.BaseURL() + "/" + filepath.ToSlash(rel)
}

func workerCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func joinDetail(existing, added string) string {
	if existing == "" {
		return added
	}
	return existing + "; " + added
}
