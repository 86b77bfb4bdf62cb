// Package constants provides shared constants used throughout the storefront codebase.
// This includes endpoints, timeouts, limits, and display defaults that should be
// consistent across the fetcher, the views and the host shell.
package constants

import "time"

// Catalog API constants
const (
	// DefaultAPIURL is the base URL of the reference catalog API
	DefaultAPIURL = "https://api.escuelajs.co/api/v1"

	// ProductsPath is the collection path for products
	ProductsPath = "/products"

	// CategoriesPath is the collection path for categories
	CategoriesPath = "/categories"
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for a single catalog request
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultViewTimeout bounds one view fetch cycle
	DefaultViewTimeout = 45 * time.Second

	// ShutdownTimeout is how long the host shell waits for cleanup
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// View limits mirror the requests issued by the home and products views
const (
	// HomeCategoriesLimit is the number of category tiles requested for the home view
	HomeCategoriesLimit = 4

	// ProductsLimit is the number of products requested for both views
	ProductsLimit = 12

	// ProductsOffset is the offset used for product listing requests
	ProductsOffset = 1

	// FeaturedCount is the size of the featured subset
	FeaturedCount = 4

	// LatestCount is the size of the latest subset
	LatestCount = 4
)

// Display defaults
const (
	// PlaceholderImageURL replaces missing product and category images
	PlaceholderImageURL = "https://placehold.co/600x400"
)

// Route paths used by the views
const (
	// RouteHome is the home view path
	RouteHome = "/"

	// RouteProducts is the products listing path
	RouteProducts = "/products"

	// RouteNewProduct is the create-product form path
	RouteNewProduct = "/products/new"
)

// User-facing messages
const (
	// MsgProductsFailed is shown when the products request fails without a server message
	MsgProductsFailed = "Failed to fetch products"

	// MsgCategoriesFailed is shown when the categories request fails without a server message
	MsgCategoriesFailed = "Failed to fetch categories"

	// MsgProductFailed is shown when a single product request fails without a server message
	MsgProductFailed = "Failed to fetch product"

	// MsgTimeout is shown when a view fetch cycle exceeds its deadline
	MsgTimeout = "Request timed out"
)
