// Package generate implements the interface generation stage: it prompts a
// model with the reference screenshot and saves the extracted HTML document
// at the deterministic artifact path.
package generate

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/uibench/pkg/pipeline"
	"github.com/user/uibench/pkg/ports"
)

// DefaultPromptTemplate is the fixed instruction sent to every model; the
// application name is substituted for the verb placeholder.
const DefaultPromptTemplate = "Generate this %s interface in HTML, CSS and JavaScript.\n" +
	"Return a single HTML file with embedded CSS and JavaScript."

// Stage generates one artifact per (application, model) invocation.
type Stage struct {
	client ports.InferenceClient
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new generate stage.
func New(client ports.InferenceClient, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		client: client,
		fs:     fs,
		logger: logger.WithComponent("generate"),
	}
}

// mediaTypes maps reference image extensions to MIME types.
var mediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MediaTypeForPath returns the MIME type for a reference image path,
// defaulting to image/png.
func MediaTypeForPath(path string) string {
	if mt, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return "image/png"
}

// Execute produces exactly one artifact file at input.OutputPath, or fails.
// On ErrIncompleteDocument or ErrNoDocument nothing is written, so a prior
// complete artifact at the same path survives a failed regeneration.
func (s *Stage) Execute(ctx context.Context, input pipeline.GenerateInput) (pipeline.GenerateResult, error) {
	result := pipeline.GenerateResult{OutputPath: input.OutputPath}

	imageData, err := s.fs.ReadFile(input.ImagePath)
	if err != nil {
		return result, fmt.Errorf("read reference image: %w", err)
	}

	template := input.PromptTemplate
	if template == "" {
		template = DefaultPromptTemplate
	}
	prompt := fmt.Sprintf(template, input.AppName)

	s.logger.Debug("Calling inference endpoint")
	reply, err := s.client.Complete(ctx, ports.InferenceRequest{
		Model:     input.Model,
		Prompt:    prompt,
		ImageData: imageData,
		MediaType: MediaTypeForPath(input.ImagePath),
		MaxTokens: input.MaxTokens,
	})
	if err != nil {
		return result, fmt.Errorf("inference: %w", err)
	}

	doc, err := ExtractDocument(reply)
	if err != nil {
		return result, err
	}
	if err := ValidateComplete(doc); err != nil {
		return result, err
	}

	if err := s.fs.WriteFile(input.OutputPath, []byte(doc)); err != nil {
		return result, fmt.Errorf("write artifact: %w", err)
	}

	s.logger.Debug("Artifact saved to %s", input.OutputPath)
	result.Size = len(doc)
	return result, nil
}
