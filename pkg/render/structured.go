package render

import (
	"io"

	"github.com/agentstation/storefront/internal/cmd/output"
	"github.com/agentstation/storefront/pkg/catalogs"
	"github.com/agentstation/storefront/pkg/viewstate"
	"github.com/agentstation/storefront/pkg/views"
)

// StructuredRenderer serializes the page model as JSON or YAML.
type StructuredRenderer struct {
	Format output.Format
}

var _ PageRenderer = (*StructuredRenderer)(nil)

// RenderHome implements Renderer.
func (r *StructuredRenderer) RenderHome(w io.Writer, state viewstate.State[views.HomeData]) error {
	return r.RenderPage(w, HomePage(state))
}

// RenderProducts implements Renderer.
func (r *StructuredRenderer) RenderProducts(w io.Writer, state viewstate.State[[]catalogs.Product]) error {
	return r.RenderPage(w, ProductsPage(state))
}

// RenderProduct implements Renderer.
func (r *StructuredRenderer) RenderProduct(w io.Writer, state viewstate.State[catalogs.Product]) error {
	return r.RenderPage(w, ProductPage(state))
}

// RenderPage implements PageRenderer.
func (r *StructuredRenderer) RenderPage(w io.Writer, page Page) error {
	format := r.Format
	if !format.IsStructured() {
		format = output.FormatJSON
	}
	return output.NewFormatter(format).Format(w, page)
}
