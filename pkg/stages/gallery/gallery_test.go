package gallery

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/user/uibench/pkg/adapters/logger"
	"github.com/user/uibench/pkg/mocks"
	"github.com/user/uibench/pkg/pipeline"
)

func newTestGallery(t *testing.T) (*Stage, *mocks.FileSystem) {
	t.Helper()
	fs := mocks.NewFileSystem()
	if err := Scaffold(fs, "index.html", []string{"Spotify", "Jira"}); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	return New(fs, logger.NewNoop()), fs
}

func spotifyInput() pipeline.GalleryInput {
	return pipeline.GalleryInput{
		GalleryPath:    "index.html",
		SectionID:      "spotify",
		Model:          "vendor/model-x",
		ArtifactHref:   "outputs/spotify/vendor_model_x.html",
		ScreenshotHref: "outputs/spotify/vendor_model_x.png",
	}
}

func TestExecute_InsertsCard(t *testing.T) {
	stage, fs := newTestGallery(t)

	result, err := stage.Execute(context.Background(), spotifyInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Inserted {
		t.Error("expected Inserted = true")
	}

	data, _ := fs.GetFile("index.html")
	doc := string(data)
	for _, want := range []string{
		`data-model="vendor_model_x"`,
		"Vendor Model X",
		`href="outputs/spotify/vendor_model_x.html"`,
		`src="outputs/spotify/vendor_model_x.png"`,
		"Live render",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("gallery does not contain %q", want)
		}
	}
}

func TestExecute_RepeatedInsertionIsIdempotent(t *testing.T) {
	stage, fs := newTestGallery(t)

	if _, err := stage.Execute(context.Background(), spotifyInput()); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	first, _ := fs.GetFile("index.html")

	result, err := stage.Execute(context.Background(), spotifyInput())
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if result.Inserted {
		t.Error("second insertion must be a no-op")
	}

	second, _ := fs.GetFile("index.html")
	if string(first) != string(second) {
		t.Error("document changed on repeated insertion")
	}
	if got := strings.Count(string(second), `data-model="vendor_model_x"`); got != 1 {
		t.Errorf("expected exactly 1 card, found %d", got)
	}
}

func TestExecute_SameModelDifferentSections(t *testing.T) {
	stage, fs := newTestGallery(t)

	if _, err := stage.Execute(context.Background(), spotifyInput()); err != nil {
		t.Fatalf("spotify insert: %v", err)
	}

	input := spotifyInput()
	input.SectionID = "jira"
	input.ArtifactHref = "outputs/jira/vendor_model_x.html"
	input.ScreenshotHref = "outputs/jira/vendor_model_x.png"
	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("jira insert: %v", err)
	}
	if !result.Inserted {
		t.Error("the same model must insert into each application section")
	}

	data, _ := fs.GetFile("index.html")
	if got := strings.Count(string(data), `data-model="vendor_model_x"`); got != 2 {
		t.Errorf("expected 2 cards across sections, found %d", got)
	}
}

func TestExecute_SectionNotFound(t *testing.T) {
	stage, _ := newTestGallery(t)

	input := spotifyInput()
	input.SectionID = "missing_app"

	_, err := stage.Execute(context.Background(), input)
	if !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("expected ErrSectionNotFound, got %v", err)
	}
}

func TestExecute_PreservesExistingCards(t *testing.T) {
	stage, fs := newTestGallery(t)

	if _, err := stage.Execute(context.Background(), spotifyInput()); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	other := spotifyInput()
	other.Model = "other/competitor"
	other.ArtifactHref = "outputs/spotify/other_competitor.html"
	other.ScreenshotHref = "outputs/spotify/other_competitor.png"
	if _, err := stage.Execute(context.Background(), other); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	data, _ := fs.GetFile("index.html")
	doc := string(data)
	if !strings.Contains(doc, `data-model="vendor_model_x"`) {
		t.Error("earlier card was lost")
	}
	if !strings.Contains(doc, `data-model="other_competitor"`) {
		t.Error("new card was not added")
	}
}

func TestScaffold_IsNoOpWhenGalleryExists(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFile("index.html", []byte("<html>custom</html>"))

	if err := Scaffold(fs, "index.html", []string{"Spotify"}); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	data, _ := fs.GetFile("index.html")
	if string(data) != "<html>custom</html>" {
		t.Error("existing gallery was overwritten")
	}
}

func TestScaffold_CreatesSectionPerApplication(t *testing.T) {
	fs := mocks.NewFileSystem()
	if err := Scaffold(fs, "index.html", []string{"Google Sheets", "VS Code"}); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	data, _ := fs.GetFile("index.html")
	doc := string(data)
	for _, want := range []string{`id="google_sheets"`, `id="vs_code"`} {
		if !strings.Contains(doc, want) {
			t.Errorf("scaffold missing %q", want)
		}
	}
}
