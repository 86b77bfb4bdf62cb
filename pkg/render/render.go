// Package render turns view states into pages and writes them out.
//
// Page builders are pure: they read a viewstate.State and return a Page that
// holds exactly one of a loading indicator, an error message or the ready
// sections. Raw catalog records go through a single normalization step
// before they reach a card, so renderers never apply fallbacks themselves.
package render

import (
	"context"
	"io"

	"github.com/agentstation/storefront/pkg/catalogs"
	"github.com/agentstation/storefront/pkg/viewstate"
	"github.com/agentstation/storefront/pkg/views"
)

// Router is the navigation surface pages link into.
type Router interface {
	// Navigate activates the view bound to path.
	Navigate(ctx context.Context, path string) error

	// Link returns an activatable element pointing at path.
	Link(path, label string) Link
}

// Renderer writes view states to w.
type Renderer interface {
	RenderHome(w io.Writer, state viewstate.State[views.HomeData]) error
	RenderProducts(w io.Writer, state viewstate.State[[]catalogs.Product]) error
	RenderProduct(w io.Writer, state viewstate.State[catalogs.Product]) error
}

// Link is an activatable element pointing at a route.
type Link struct {
	Path  string `json:"path" yaml:"path"`
	Label string `json:"label" yaml:"label"`
}

// NewLink returns a link to path.
func NewLink(path, label string) Link {
	return Link{Path: path, Label: label}
}

// Card is a normalized product ready for display.
type Card struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Price       string `json:"price" yaml:"price"`
	Image       string `json:"image" yaml:"image"`
	Category    string `json:"category" yaml:"category"`
	Link        Link   `json:"link" yaml:"link"`
}

// Tile is a normalized category ready for display.
type Tile struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image" yaml:"image"`
	Hint  string `json:"hint,omitempty" yaml:"hint,omitempty"`
	Link  Link   `json:"link" yaml:"link"`
}

// Section is a titled group of cards or tiles on a page.
type Section struct {
	Name  string `json:"name" yaml:"name"`
	Title string `json:"title" yaml:"title"`
	Link  *Link  `json:"link,omitempty" yaml:"link,omitempty"`
	Cards []Card `json:"cards,omitempty" yaml:"cards,omitempty"`
	Tiles []Tile `json:"tiles,omitempty" yaml:"tiles,omitempty"`
}

// Page is everything a renderer needs to paint one view.
// Exactly one of Loading, Error or the ready fields is set.
type Page struct {
	View     string    `json:"view" yaml:"view"`
	Status   string    `json:"status" yaml:"status"`
	Loading  string    `json:"loading,omitempty" yaml:"loading,omitempty"`
	Error    string    `json:"error,omitempty" yaml:"error,omitempty"`
	Badge    string    `json:"badge,omitempty" yaml:"badge,omitempty"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string    `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Actions  []Link    `json:"actions,omitempty" yaml:"actions,omitempty"`
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// IsLoading reports whether the page shows only the loading indicator.
func (p Page) IsLoading() bool {
	return p.Status == viewstate.StatusLoading.String()
}

// IsError reports whether the page shows only an error message.
func (p Page) IsError() bool {
	return p.Status == viewstate.StatusError.String()
}

// Section returns the named section, if present.
func (p Page) Section(name string) (Section, bool) {
	for _, s := range p.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}
