// Package views binds each storefront view to the fetches it needs.
//
// A view is expressed as a viewstate.LoadFunc so the controller can run it,
// cancel it on unmount and turn its outcome into a state.
package views

import (
	"context"

	"github.com/agentstation/storefront/pkg/catalogs"
	"github.com/agentstation/storefront/pkg/constants"
	"github.com/agentstation/storefront/pkg/derive"
	"github.com/agentstation/storefront/pkg/fetcher"
	"github.com/agentstation/storefront/pkg/logging"
	"github.com/agentstation/storefront/pkg/viewstate"
)

// View names used for logging and routing.
const (
	NameHome     = "home"
	NameProducts = "products"
	NameProduct  = "product"
)

// Config holds the page sizes the views request.
type Config struct {
	CategoriesLimit int `mapstructure:"categories_limit" yaml:"categories_limit"`
	ProductsLimit   int `mapstructure:"products_limit" yaml:"products_limit"`
	ProductsOffset  int `mapstructure:"products_offset" yaml:"products_offset"`
}

// DefaultConfig returns the limits the storefront pages use.
func DefaultConfig() Config {
	return Config{
		CategoriesLimit: constants.HomeCategoriesLimit,
		ProductsLimit:   constants.ProductsLimit,
		ProductsOffset:  constants.ProductsOffset,
	}
}

// HomeData is the raw data of the home view. Both collections are present
// only when both fetches succeeded.
type HomeData struct {
	Products   []catalogs.Product  `json:"products" yaml:"products"`
	Categories []catalogs.Category `json:"categories" yaml:"categories"`
}

// Featured returns the featured subset of the home products.
func (h HomeData) Featured() []catalogs.Product {
	return derive.Featured(h.Products)
}

// Latest returns the most recently created home products.
func (h HomeData) Latest() []catalogs.Product {
	return derive.Latest(h.Products)
}

// Home fetches categories and products concurrently. The first failure is
// returned immediately and cancels the other request.
func Home(f fetcher.Fetcher, cfg Config) viewstate.LoadFunc[HomeData] {
	return func(ctx context.Context) (HomeData, error) {
		var (
			products   []catalogs.Product
			categories []catalogs.Category
		)

		err := firstError(ctx,
			func(ctx context.Context) error {
				var err error
				categories, err = f.FetchCategories(ctx, cfg.CategoriesLimit)
				return err
			},
			func(ctx context.Context) error {
				var err error
				products, err = f.FetchProducts(ctx, cfg.ProductsLimit, cfg.ProductsOffset)
				return err
			},
		)
		if err != nil {
			return HomeData{}, err
		}

		logging.FromContext(ctx).Debug().
			Int("products", len(products)).
			Int("categories", len(categories)).
			Msg("Home data loaded")

		return HomeData{Products: products, Categories: categories}, nil
	}
}

// Products fetches one page of products.
func Products(f fetcher.Fetcher, cfg Config) viewstate.LoadFunc[[]catalogs.Product] {
	return func(ctx context.Context) ([]catalogs.Product, error) {
		return f.FetchProducts(ctx, cfg.ProductsLimit, cfg.ProductsOffset)
	}
}

// Product fetches a single product.
func Product(f fetcher.Fetcher, id int) viewstate.LoadFunc[catalogs.Product] {
	return func(ctx context.Context) (catalogs.Product, error) {
		return f.FetchProduct(ctx, id)
	}
}
