package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/agentstation/storefront/pkg/catalogs"
	"github.com/agentstation/storefront/pkg/constants"
)

// markup strips every tag from API-provided text.
var markup = bluemonday.StrictPolicy()

// NormalizeProduct converts a raw product into a card with every display
// default applied. The input is not modified.
func NormalizeProduct(p catalogs.Product) Card {
	image, ok := p.FirstImage()
	if !ok {
		image = constants.PlaceholderImageURL
	}

	title := plainText(p.Title)
	return Card{
		ID:          p.ID,
		Title:       title,
		Description: plainText(p.Description),
		Price:       FormatPrice(p.Price),
		Image:       image,
		Category:    plainText(p.CategoryName()),
		Link:        NewLink(p.Path(), title),
	}
}

// NormalizeProducts normalizes each product in order.
func NormalizeProducts(products []catalogs.Product) []Card {
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, NormalizeProduct(p))
	}
	return cards
}

// NormalizeCategory converts a raw category into a tile linking to the
// product listing.
func NormalizeCategory(c catalogs.Category) Tile {
	image := c.Image
	if strings.TrimSpace(image) == "" {
		image = constants.PlaceholderImageURL
	}

	name := plainText(c.Name)
	return Tile{
		ID:    c.ID,
		Name:  name,
		Image: image,
		Hint:  "Tap to browse",
		Link:  NewLink(constants.RouteProducts, name),
	}
}

// NormalizeCategories normalizes each category in order.
func NormalizeCategories(categories []catalogs.Category) []Tile {
	tiles := make([]Tile, 0, len(categories))
	for _, c := range categories {
		tiles = append(tiles, NormalizeCategory(c))
	}
	return tiles
}

// FormatPrice renders a price as a dollar amount with the shortest decimal
// representation, e.g. 10 -> "$10" and 9.5 -> "$9.5".
func FormatPrice(price float64) string {
	return "$" + strconv.FormatFloat(price, 'f', -1, 64)
}

func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(markup.Sanitize(s)))
}
