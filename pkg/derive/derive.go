// Package derive computes the view-specific subsets of a product collection.
// Every function is pure: inputs are never modified and results never alias
// the input's backing array.
package derive

import (
	"slices"

	"github.com/agentstation/storefront/pkg/catalogs"
	"github.com/agentstation/storefront/pkg/constants"
)

// FeaturedCount and LatestCount are the subset sizes used by the home view.
const (
	FeaturedCount = constants.FeaturedCount
	LatestCount   = constants.LatestCount
)

// Featured returns the first FeaturedCount products in their existing order.
func Featured(products []catalogs.Product) []catalogs.Product {
	return FeaturedN(products, FeaturedCount)
}

// FeaturedN returns the first n products in their existing order.
func FeaturedN(products []catalogs.Product, n int) []catalogs.Product {
	out := make([]catalogs.Product, clamp(n, len(products)))
	copy(out, products)
	return out
}

// Latest returns the LatestCount most recently created products, newest first.
func Latest(products []catalogs.Product) []catalogs.Product {
	return LatestN(products, LatestCount)
}

// LatestN sorts a copy of products by CreationAt descending and returns the first n.
// Products whose timestamp cannot be parsed sort after every valid one.
// The sort is stable, so equal timestamps keep their input order.
func LatestN(products []catalogs.Product, n int) []catalogs.Product {
	type keyed struct {
		product catalogs.Product
		stamp   Timestamp
	}

	sorted := make([]keyed, len(products))
	for i, p := range products {
		sorted[i] = keyed{product: p, stamp: ParseTimestamp(p.CreationAt)}
	}

	slices.SortStableFunc(sorted, func(a, b keyed) int {
		return b.stamp.Compare(a.stamp)
	})

	n = clamp(n, len(sorted))
	out := make([]catalogs.Product, n)
	for i := range out {
		out[i] = sorted[i].product
	}
	return out
}

func clamp(n, length int) int {
	if n < 0 {
		return 0
	}
	if n > length {
		return length
	}
	return n
}
