package catalogs

import (
	"strconv"

	"github.com/agentstation/storefront/pkg/constants"
)

// Product is a product record as returned by the catalog API.
// Images may be empty, Category may be nil and CreationAt may be unparsable;
// records are read-only once decoded and display defaults are applied by the
// renderer's normalization step, never written back here.
type Product struct {
	ID          int       `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Slug        string    `json:"slug,omitempty" yaml:"slug,omitempty"`
	Description string    `json:"description" yaml:"description"`
	Price       float64   `json:"price" yaml:"price"`
	Images      []string  `json:"images" yaml:"images"`
	Category    *Category `json:"category,omitempty" yaml:"category,omitempty"`
	CreationAt  string    `json:"creationAt" yaml:"creationAt"`
	UpdatedAt   string    `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Path returns the route of the product's detail view.
func (p Product) Path() string {
	return ProductPath(p.ID)
}

// ProductPath returns the detail route for a product identifier.
func ProductPath(id int) string {
	return constants.RouteProducts + "/" + strconv.Itoa(id)
}

// FirstImage returns the first image URL and whether one exists.
func (p Product) FirstImage() (string, bool) {
	if len(p.Images) == 0 || p.Images[0] == "" {
		return "", false
	}
	return p.Images[0], true
}

// CategoryName returns the category name, or "" when the product has no category.
func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}
