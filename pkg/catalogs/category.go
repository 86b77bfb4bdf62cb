package catalogs

// Category is a category record as returned by the catalog API.
type Category struct {
	ID         int    `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Slug       string `json:"slug,omitempty" yaml:"slug,omitempty"`
	Image      string `json:"image,omitempty" yaml:"image,omitempty"`
	CreationAt string `json:"creationAt,omitempty" yaml:"creationAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}
