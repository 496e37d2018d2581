// Package gallery implements gallery assembly: it inserts one display card
// per (application, model) pair into the static comparison page, without
// duplication.
package gallery

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/user/uibench/pkg/naming"
	"github.com/user/uibench/pkg/pipeline"
	"github.com/user/uibench/pkg/ports"
)

// ErrSectionNotFound is returned when the gallery document has no section
// for the requested application. Other sections are unaffected.
var ErrSectionNotFound = errors.New("gallery: application section not found")

// Stage inserts display cards into the static gallery document.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a new gallery stage.
func New(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("gallery"),
	}
}

// Execute inserts one card for the pair into its application section. A
// card already referencing the model token is left untouched, so repeated
// runs are idempotent.
func (s *Stage) Execute(ctx context.Context, input pipeline.GalleryInput) (pipeline.GalleryResult, error) {
	result := pipeline.GalleryResult{}

	data, err := s.fs.ReadFile(input.GalleryPath)
	if err != nil {
		return result, fmt.Errorf("read gallery: %w", err)
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return result, fmt.Errorf("parse gallery: %w", err)
	}

	section := findByID(doc, input.SectionID)
	if section == nil {
		return result, fmt.Errorf("%w: %q", ErrSectionNotFound, input.SectionID)
	}

	token := naming.ModelToken(input.Model)
	if hasCard(section, token) {
		s.logger.Debug("Gallery entry for %s already present, skipping", token)
		return result, nil
	}

	list := findByClass(section, "cards")
	if list == nil {
		list = section
	}
	list.AppendChild(buildCard(token, naming.ModelLabel(input.Model), input.ArtifactHref, input.ScreenshotHref))

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return result, fmt.Errorf("render gallery: %w", err)
	}
	if err := s.fs.WriteFile(input.GalleryPath, buf.Bytes()); err != nil {
		return result, fmt.Errorf("write gallery: %w", err)
	}

	s.logger.Debug("Gallery entry added for %s", token)
	result.Inserted = true
	return result, nil
}

// buildCard constructs the display card node: label heading, a link to the
// live artifact, and the screenshot with a text fallback when the image is
// missing.
func buildCard(token, label, artifactHref, screenshotHref string) *html.Node {
	card := elem(atom.Div, "div",
		html.Attribute{Key: "class", Val: "card"},
		html.Attribute{Key: "data-model", Val: token},
	)

	heading := elem(atom.H3, "h3")
	heading.AppendChild(text(label))
	card.AppendChild(heading)

	live := elem(atom.A, "a", html.Attribute{Key: "href", Val: artifactHref})
	live.AppendChild(text("Live render"))
	card.AppendChild(live)

	shot := elem(atom.A, "a", html.Attribute{Key: "href", Val: screenshotHref})
	shot.AppendChild(elem(atom.Img, "img",
		html.Attribute{Key: "src", Val: screenshotHref},
		html.Attribute{Key: "alt", Val: label},
		html.Attribute{Key: "loading", Val: "lazy"},
		html.Attribute{Key: "onerror", Val: "this.parentElement.textContent='screenshot unavailable'"},
	))
	card.AppendChild(shot)

	return card
}

func elem(a atom.Atom, tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     tag,
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// findByID returns the first element with the given id attribute.
func findByID(n *html.Node, id string) *html.Node {
	return find(n, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
}

// findByClass returns the first element carrying the given class.
func findByClass(n *html.Node, class string) *html.Node {
	return find(n, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, f := range bytes.Fields([]byte(attr(n, "class"))) {
			if string(f) == class {
				return true
			}
		}
		return false
	})
}

// hasCard reports whether the section already contains a card for token.
func hasCard(section *html.Node, token string) bool {
	return find(section, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "data-model") == token
	}) != nil
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
