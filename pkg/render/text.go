package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/agentstation/storefront/internal/cmd/output"
	"github.com/agentstation/storefront/pkg/catalogs"
	"github.com/agentstation/storefront/pkg/viewstate"
	"github.com/agentstation/storefront/pkg/views"
)

// PageRenderer writes an already built page.
type PageRenderer interface {
	Renderer
	RenderPage(w io.Writer, page Page) error
}

// New returns the renderer for format. Table formats render text; json and
// yaml serialize the page model.
func New(format output.Format) PageRenderer {
	if format.IsStructured() {
		return &StructuredRenderer{Format: format}
	}
	return &TextRenderer{Wide: format == output.FormatWide}
}

// TextRenderer paints pages as plain text with one table per section.
type TextRenderer struct {
	// Wide adds image and description columns.
	Wide bool
}

var _ PageRenderer = (*TextRenderer)(nil)

// RenderHome implements Renderer.
func (r *TextRenderer) RenderHome(w io.Writer, state viewstate.State[views.HomeData]) error {
	return r.RenderPage(w, HomePage(state))
}

// RenderProducts implements Renderer.
func (r *TextRenderer) RenderProducts(w io.Writer, state viewstate.State[[]catalogs.Product]) error {
	return r.RenderPage(w, ProductsPage(state))
}

// RenderProduct implements Renderer.
func (r *TextRenderer) RenderProduct(w io.Writer, state viewstate.State[catalogs.Product]) error {
	return r.RenderPage(w, ProductPage(state))
}

// RenderPage writes the loading indicator, the error message, or the ready
// page, never more than one of them.
func (r *TextRenderer) RenderPage(w io.Writer, page Page) error {
	switch {
	case page.IsError():
		_, err := fmt.Fprintln(w, page.Error)
		return err
	case page.IsLoading():
		_, err := fmt.Fprintln(w, page.Loading)
		return err
	}

	p := &printer{w: w}
	if page.Badge != "" {
		p.printf("[%s]\n", page.Badge)
	}
	if page.Title != "" {
		p.printf("%s\n", page.Title)
	}
	if page.Subtitle != "" {
		p.printf("%s\n", page.Subtitle)
	}
	for _, a := range page.Actions {
		p.printf("%s\n", formatLink(a))
	}
	if p.err != nil {
		return p.err
	}

	formatter := output.NewFormatter(output.FormatTable)
	for _, s := range page.Sections {
		p.printf("\n%s", s.Title)
		if s.Link != nil {
			p.printf("  %s", formatLink(*s.Link))
		}
		p.printf("\n")
		if p.err != nil {
			return p.err
		}

		if err := formatter.Format(w, r.sectionData(s)); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) sectionData(s Section) output.Data {
	if s.Tiles != nil || s.Name == SectionCategories {
		data := output.Data{Headers: []string{"name", "image", "link"}}
		for _, t := range s.Tiles {
			data.Rows = append(data.Rows, []string{t.Name, t.Image, t.Link.Path})
		}
		return data
	}

	data := output.Data{
		Headers:         []string{"id", "title", "category", "price", "link"},
		ColumnAlignment: []output.Align{output.AlignRight, output.AlignLeft, output.AlignLeft, output.AlignRight, output.AlignLeft},
	}
	if r.Wide {
		data.Headers = append(data.Headers, "image", "description")
		data.ColumnAlignment = append(data.ColumnAlignment, output.AlignLeft, output.AlignLeft)
	}
	for _, c := range s.Cards {
		row := []string{strconv.Itoa(c.ID), c.Title, c.Category, c.Price, c.Link.Path}
		if r.Wide {
			row = append(row, c.Image, c.Description)
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

func formatLink(l Link) string {
	return fmt.Sprintf("%s -> %s", l.Label, l.Path)
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
