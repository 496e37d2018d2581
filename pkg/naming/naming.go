// Package naming derives filesystem-safe tokens and display labels from
// application names and provider-qualified model identifiers. The same
// derivations are used for artifact paths, screenshot paths and gallery
// entries so the three always agree.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	separators  = regexp.MustCompile(`[/.\-\s]+`)
	disallowed  = regexp.MustCompile(`[^a-z0-9_]`)
	underscores = regexp.MustCompile(`_+`)
)

// ModelToken converts a provider-qualified model identifier into the
// filename-safe token used for artifact and screenshot names.
//
// Example: "anthropic/claude-sonnet-4.5" -> "anthropic_claude_sonnet_4_5"
//
// The provider prefix is kept so identifiers that share a model name under
// different providers never collide.
func ModelToken(model string) string {
	token := strings.ToLower(model)
	token = separators.ReplaceAllString(token, "_")
	token = disallowed.ReplaceAllString(token, "")
	token = underscores.ReplaceAllString(token, "_")
	return strings.Trim(token, "_")
}

// ModelLabel converts a model identifier into a human-readable display label
// used only in the gallery.
//
// Example: "vendor/model-x" -> "Vendor Model X"
func ModelLabel(model string) string {
	label := strings.NewReplacer("/", " ", "-", " ", "_", " ").Replace(model)
	label = strings.Join(strings.Fields(label), " ")
	return cases.Title(language.English).String(label)
}

// AppDir converts an application name into its outputs directory name.
//
// Example: "Microsoft Word" -> "microsoft_word"
func AppDir(appName string) string {
	return strings.ToLower(strings.Join(strings.Fields(appName), "_"))
}

// ArtifactPath returns the deterministic path for a generated HTML artifact.
func ArtifactPath(outputsDir, appName, model string) string {
	return filepath.Join(outputsDir, AppDir(appName), ModelToken(model)+".html")
}

// ScreenshotPath returns the deterministic path for a captured screenshot.
// It mirrors ArtifactPath with a .png extension.
func ScreenshotPath(outputsDir, appName, model string) string {
	return filepath.Join(outputsDir, AppDir(appName), ModelToken(model)+".png")
}
