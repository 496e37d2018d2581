// Package capture implements the screenshot capture stage: it renders a
// generated artifact at its application's exact viewport and saves the
// raster image at the mirrored output path.
package capture

import (
	"context"
	"fmt"

	"github.com/user/uibench/pkg/naming"
	"github.com/user/uibench/pkg/pipeline"
	"github.com/user/uibench/pkg/ports"
)

// Stage captures one screenshot per (application, model) invocation.
type Stage struct {
	shooter     ports.Screenshotter
	placeholder ports.PlaceholderRenderer // nil disables placeholder output
	fs          ports.FileSystem
	logger      ports.Logger
	opts        ports.CaptureOptions
}

// New creates a new capture stage.
func New(shooter ports.Screenshotter, placeholder ports.PlaceholderRenderer, fs ports.FileSystem, logger ports.Logger, opts ports.CaptureOptions) *Stage {
	return &Stage{
		shooter:     shooter,
		placeholder: placeholder,
		fs:          fs,
		logger:      logger.WithComponent("capture"),
		opts:        opts,
	}
}

// Execute renders the artifact and writes the screenshot. An existing
// screenshot is kept unless input.Force is set (a forced run overwrites a
// stale image captured at the wrong viewport). When the render fails and
// placeholders are enabled, a placeholder image is recorded at the output
// path and the failure is still reported.
func (s *Stage) Execute(ctx context.Context, input pipeline.CaptureInput) (pipeline.CaptureResult, error) {
	result := pipeline.CaptureResult{OutputPath: input.OutputPath}

	exists, err := s.fs.Exists(input.ArtifactPath)
	if err != nil {
		return result, fmt.Errorf("stat artifact: %w", err)
	}
	if !exists {
		return result, fmt.Errorf("%w: %s", ErrArtifactMissing, input.ArtifactPath)
	}

	if !input.Force {
		exists, err := s.fs.Exists(input.OutputPath)
		if err != nil {
			return result, fmt.Errorf("stat screenshot: %w", err)
		}
		if exists {
			result.Skipped = true
			result.SkipReason = "screenshot already exists"
			s.logger.Debug("Skipping %s: %s", input.OutputPath, result.SkipReason)
			return result, nil
		}
	}

	opts := s.opts
	if input.SettleDelayMs > 0 {
		opts.SettleDelayMs = input.SettleDelayMs
	}
	if input.TimeoutMs > 0 {
		opts.TimeoutMs = input.TimeoutMs
	}

	s.logger.Debug("Capturing %s at %dx%d", input.URL, input.Viewport.Width, input.Viewport.Height)
	buf, err := s.shooter.CaptureURL(ctx, input.URL, input.Viewport, opts)
	if err != nil {
		renderErr := fmt.Errorf("%w: %v", ErrRenderFailed, err)
		if input.Placeholder && s.placeholder != nil {
			if perr := s.recordPlaceholder(input); perr == nil {
				result.Placeholder = true
				result.Width = input.Viewport.Width
				result.Height = input.Viewport.Height
			} else {
				s.logger.Warn("Failed to record placeholder for %s: %s", input.OutputPath, perr)
			}
		}
		return result, renderErr
	}

	if err := s.fs.WriteFile(input.OutputPath, buf); err != nil {
		return result, fmt.Errorf("write screenshot: %w", err)
	}

	s.logger.Debug("Screenshot saved to %s", input.OutputPath)
	result.Width = input.Viewport.Width
	result.Height = input.Viewport.Height
	return result, nil
}

func (s *Stage) recordPlaceholder(input pipeline.CaptureInput) error {
	s.logger.Debug("Recording placeholder for %s", input.OutputPath)
	img, err := s.placeholder.RenderPlaceholder(
		input.Viewport, input.AppName, naming.ModelLabel(input.Model), "render failed")
	if err != nil {
		return err
	}
	return s.fs.WriteFile(input.OutputPath, img)
}
