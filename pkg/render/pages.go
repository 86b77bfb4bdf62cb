package render

import (
	"github.com/agentstation/storefront/pkg/catalogs"
	"github.com/agentstation/storefront/pkg/constants"
	"github.com/agentstation/storefront/pkg/viewstate"
	"github.com/agentstation/storefront/pkg/views"
)

// Loading indicator text per view.
const (
	LoadingHome     = "Loading..."
	LoadingProducts = "Loading products..."
	LoadingProduct  = "Loading product..."
)

// Section names on the home page.
const (
	SectionFeatured   = "featured"
	SectionCategories = "categories"
	SectionLatest     = "latest"
	SectionProducts   = "products"
	SectionProduct    = "product"
)

// HomePage builds the home page for state.
func HomePage(state viewstate.State[views.HomeData]) Page {
	page, data, ok := gate(views.NameHome, LoadingHome, state)
	if !ok {
		return page
	}

	viewAll := NewLink(constants.RouteProducts, "View all")

	page.Badge = "New arrivals"
	page.Title = "Discover products you’ll love"
	page.Subtitle = "Browse categories, view latest items, and manage products & users in one simple app."
	page.Actions = []Link{NewLink(constants.RouteProducts, "Explore products")}
	page.Sections = []Section{
		{
			Name:  SectionFeatured,
			Title: "Featured products",
			Link:  &viewAll,
			Cards: NormalizeProducts(data.Featured()),
		},
		{
			Name:  SectionCategories,
			Title: "Categories",
			Tiles: NormalizeCategories(data.Categories),
		},
		{
			Name:  SectionLatest,
			Title: "Latest products",
			Link:  &viewAll,
			Cards: NormalizeProducts(data.Latest()),
		},
	}
	return page
}

// ProductsPage builds the product listing page for state.
func ProductsPage(state viewstate.State[[]catalogs.Product]) Page {
	page, data, ok := gate(views.NameProducts, LoadingProducts, state)
	if !ok {
		return page
	}

	page.Title = "Products"
	page.Subtitle = "Manage your product catalog"
	page.Actions = []Link{NewLink(constants.RouteNewProduct, "+ Add product")}
	page.Sections = []Section{
		{
			Name:  SectionProducts,
			Title: "Products",
			Cards: NormalizeProducts(data),
		},
	}
	return page
}

// ProductPage builds the product detail page for state.
func ProductPage(state viewstate.State[catalogs.Product]) Page {
	page, data, ok := gate(views.NameProduct, LoadingProduct, state)
	if !ok {
		return page
	}

	card := NormalizeProduct(data)
	page.Title = card.Title
	page.Subtitle = card.Category
	page.Actions = []Link{NewLink(constants.RouteProducts, "Back to products")}
	page.Sections = []Section{
		{
			Name:  SectionProduct,
			Title: card.Title,
			Cards: []Card{card},
		},
	}
	return page
}

// gate returns the loading or error page for non-ready states, and the
// ready data with ok set otherwise.
func gate[T any](view, loading string, state viewstate.State[T]) (Page, T, bool) {
	page := Page{View: view, Status: state.Status().String()}

	if msg, failed := state.Message(); failed {
		page.Error = msg
		var zero T
		return page, zero, false
	}

	data, ready := state.Data()
	if !ready {
		page.Status = viewstate.StatusLoading.String()
		page.Loading = loading
		return page, data, false
	}
	return page, data, true
}
