// Package browse provides the commands that mount storefront views.
package browse

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/storefront/internal/appcontext"
	"github.com/agentstation/storefront/pkg/constants"
)

// NewHomeCommand creates the home command.
func NewHomeCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "home",
		GroupID: "views",
		Short:   "Show featured products, categories and latest arrivals",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return navigate(cmd, app, constants.RouteHome)
		},
	}
}

// NewProductsCommand creates the products command.
func NewProductsCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "products",
		GroupID: "views",
		Short:   "List products",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return navigate(cmd, app, constants.RouteProducts)
		},
	}
}

// NewProductCommand creates the product command.
func NewProductCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "product <id>",
		GroupID: "views",
		Short:   "Show one product",
		Example: `  storefront product 4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return navigate(cmd, app, constants.RouteProducts+"/"+args[0])
		},
	}
}

// NewOpenCommand creates the open command.
func NewOpenCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "open <path>",
		GroupID: "views",
		Short:   "Open the view bound to a storefront path",
		Long: `Open resolves a storefront path and mounts the matching view.

Paths:
  /                 home
  /products         product listing
  /products/{id}    product detail
  /products/new     add product (not available)`,
		Example: `  storefront open /
  storefront open /products/4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return navigate(cmd, app, args[0])
		},
	}
}

func navigate(cmd *cobra.Command, app appcontext.Interface, path string) error {
	sh, err := app.Shell()
	if err != nil {
		return err
	}

	app.Logger().Debug().Str("path", path).Msg("Opening view")
	return sh.Navigate(cmd.Context(), path)
}
