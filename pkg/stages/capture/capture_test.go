package capture

import (
	"context"
	"errors"
	"testing"

	"github.com/user/uibench/pkg/adapters/logger"
	"github.com/user/uibench/pkg/mocks"
	"github.com/user/uibench/pkg/pipeline"
	"github.com/user/uibench/pkg/ports"
)

func testInput() pipeline.CaptureInput {
	return pipeline.CaptureInput{
		AppName:      "Spotify",
		Model:        "vendor/model-x",
		ArtifactPath: "outputs/spotify/vendor_model_x.html",
		URL:          "http://127.0.0.1:4141/outputs/spotify/vendor_model_x.html",
		Viewport:     ports.Viewport{Width: 2404, Height: 1840},
		OutputPath:   "outputs/spotify/vendor_model_x.png",
	}
}

func newTestStage(shooter *mocks.Screenshotter, renderer *mocks.PlaceholderRenderer) (*Stage, *mocks.FileSystem) {
	fs := mocks.NewFileSystem()
	fs.SetFile("outputs/spotify/vendor_model_x.html", []byte("<html></html>"))
	return New(shooter, renderer, fs, logger.NewNoop(), ports.CaptureOptions{}), fs
}

func TestExecute_CapturesAndWritesScreenshot(t *testing.T) {
	shooter := &mocks.Screenshotter{
		CaptureURLFunc: func(ctx context.Context, url string, viewport ports.Viewport, opts ports.CaptureOptions) ([]byte, error) {
			return []byte("png bytes"), nil
		},
	}
	stage, fs := newTestStage(shooter, &mocks.PlaceholderRenderer{})

	result, err := stage.Execute(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := fs.GetFile("outputs/spotify/vendor_model_x.png")
	if !ok || string(data) != "png bytes" {
		t.Error("screenshot was not written")
	}
	if result.Width != 2404 || result.Height != 1840 {
		t.Errorf("result dimensions = %dx%d, want 2404x1840", result.Width, result.Height)
	}
	if len(shooter.URLs) != 1 || shooter.URLs[0] != testInput().URL {
		t.Errorf("captured URLs = %v", shooter.URLs)
	}
}

func TestExecute_MissingArtifact(t *testing.T) {
	stage, _ := newTestStage(&mocks.Screenshotter{}, &mocks.PlaceholderRenderer{})

	input := testInput()
	input.ArtifactPath = "outputs/spotify/never_generated.html"

	_, err := stage.Execute(context.Background(), input)
	if !errors.Is(err, ErrArtifactMissing) {
		t.Errorf("expected ErrArtifactMissing, got %v", err)
	}
}

func TestExecute_SkipsExistingScreenshot(t *testing.T) {
	shooter := &mocks.Screenshotter{}
	stage, fs := newTestStage(shooter, &mocks.PlaceholderRenderer{})
	fs.SetFile("outputs/spotify/vendor_model_x.png", []byte("existing"))

	result, err := stage.Execute(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Skipped {
		t.Error("expected skip when the screenshot already exists")
	}
	if len(shooter.URLs) != 0 {
		t.Error("browser must not be invoked for a skipped capture")
	}
	data, _ := fs.GetFile("outputs/spotify/vendor_model_x.png")
	if string(data) != "existing" {
		t.Error("existing screenshot was overwritten")
	}
}

func TestExecute_ForceRecaptures(t *testing.T) {
	shooter := &mocks.Screenshotter{
		CaptureURLFunc: func(ctx context.Context, url string, viewport ports.Viewport, opts ports.CaptureOptions) ([]byte, error) {
			return []byte("fresh"), nil
		},
	}
	stage, fs := newTestStage(shooter, &mocks.PlaceholderRenderer{})
	fs.SetFile("outputs/spotify/vendor_model_x.png", []byte("stale"))

	input := testInput()
	input.Force = true

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Skipped {
		t.Error("forced capture must not skip")
	}
	data, _ := fs.GetFile("outputs/spotify/vendor_model_x.png")
	if string(data) != "fresh" {
		t.Error("forced capture did not replace the stale screenshot")
	}
}

func TestExecute_RenderFailureRecordsPlaceholder(t *testing.T) {
	shooter := &mocks.Screenshotter{
		CaptureURLFunc: func(ctx context.Context, url string, viewport ports.Viewport, opts ports.CaptureOptions) ([]byte, error) {
			return nil, errors.New("navigation timed out")
		},
	}
	renderer := &mocks.PlaceholderRenderer{
		RenderPlaceholderFunc: func(viewport ports.Viewport, appName, modelLabel, reason string) ([]byte, error) {
			if appName != "Spotify" {
				t.Errorf("placeholder app = %q", appName)
			}
			if modelLabel != "Vendor Model X" {
				t.Errorf("placeholder label = %q", modelLabel)
			}
			return []byte("placeholder png"), nil
		},
	}
	stage, fs := newTestStage(shooter, renderer)

	input := testInput()
	input.Placeholder = true

	result, err := stage.Execute(context.Background(), input)
	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("expected ErrRenderFailed, got %v", err)
	}
	if !result.Placeholder {
		t.Error("result must record that a placeholder was written")
	}
	data, ok := fs.GetFile("outputs/spotify/vendor_model_x.png")
	if !ok || string(data) != "placeholder png" {
		t.Error("placeholder image was not written at the output path")
	}
}

func TestExecute_RenderFailureWithoutPlaceholder(t *testing.T) {
	shooter := &mocks.Screenshotter{
		CaptureURLFunc: func(ctx context.Context, url string, viewport ports.Viewport, opts ports.CaptureOptions) ([]byte, error) {
			return nil, errors.New("crashed")
		},
	}
	stage, fs := newTestStage(shooter, &mocks.PlaceholderRenderer{})

	_, err := stage.Execute(context.Background(), testInput())
	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("expected ErrRenderFailed, got %v", err)
	}
	if _, ok := fs.GetFile("outputs/spotify/vendor_model_x.png"); ok {
		t.Error("no image must be written when placeholders are disabled")
	}
}

func TestExecute_InputOverridesCaptureOptions(t *testing.T) {
	var got ports.CaptureOptions
	shooter := &mocks.Screenshotter{
		CaptureURLFunc: func(ctx context.Context, url string, viewport ports.Viewport, opts ports.CaptureOptions) ([]byte, error) {
			got = opts
			return []byte("png"), nil
		},
	}
	fs := mocks.NewFileSystem()
	fs.SetFile("outputs/spotify/vendor_model_x.html", []byte("<html></html>"))
	stage := New(shooter, nil, fs, logger.NewNoop(), ports.CaptureOptions{SettleDelayMs: 500, TimeoutMs: 30000})

	input := testInput()
	input.SettleDelayMs = 1200
	input.TimeoutMs = 60000

	if _, err := stage.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SettleDelayMs != 1200 || got.TimeoutMs != 60000 {
		t.Errorf("options not overridden: %+v", got)
	}
}
