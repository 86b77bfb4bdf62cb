// Package shell hosts storefront views in a terminal.
//
// Navigating to a path mounts the matching view, shows its loading
// indicator, waits for the fetch cycle and paints the settled page. The
// view is unmounted when navigation returns, so a canceled context (for
// example on SIGINT) discards any result that arrives late.
package shell

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/agentstation/storefront/internal/router"
	"github.com/agentstation/storefront/pkg/constants"
	"github.com/agentstation/storefront/pkg/errors"
	"github.com/agentstation/storefront/pkg/fetcher"
	"github.com/agentstation/storefront/pkg/logging"
	"github.com/agentstation/storefront/pkg/render"
	"github.com/agentstation/storefront/pkg/viewstate"
	"github.com/agentstation/storefront/pkg/views"
)

// ViewError reports a view that settled in the error state. The page with
// the message has already been painted when it is returned.
type ViewError struct {
	View    string
	Message string
}

// Error implements the error interface.
func (e *ViewError) Error() string {
	return fmt.Sprintf("%s view failed: %s", e.View, e.Message)
}

// Shell mounts views on navigation and paints them.
type Shell struct {
	fetcher  fetcher.Fetcher
	views    views.Config
	renderer render.PageRenderer
	status   render.PageRenderer
	out      io.Writer
	statusW  io.Writer
	timeout  time.Duration
	router   *router.Router
}

// New creates a shell that reads the catalog through f.
func New(f fetcher.Fetcher, opts ...Option) *Shell {
	s := &Shell{
		fetcher:  f,
		views:    views.DefaultConfig(),
		renderer: &render.TextRenderer{},
		status:   &render.TextRenderer{},
		out:      io.Discard,
		statusW:  io.Discard,
		timeout:  constants.DefaultViewTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = router.New(router.Routes{
		Home:     s.home,
		Products: s.products,
		Product:  s.product,
	})
	return s
}

// Router returns the router the shell navigates with.
func (s *Shell) Router() *router.Router {
	return s.router
}

// Navigate activates the view bound to path.
func (s *Shell) Navigate(ctx context.Context, path string) error {
	return s.router.Navigate(ctx, path)
}

func (s *Shell) home(ctx context.Context, _ router.Params) error {
	return present(ctx, s, views.NameHome, views.Home(s.fetcher, s.views), render.HomePage)
}

func (s *Shell) products(ctx context.Context, _ router.Params) error {
	return present(ctx, s, views.NameProducts, views.Products(s.fetcher, s.views), render.ProductsPage)
}

func (s *Shell) product(ctx context.Context, params router.Params) error {
	raw := params[router.ParamID]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return errors.NewValidationError("id", raw, "must be a positive integer")
	}
	return present(ctx, s, views.NameProduct, views.Product(s.fetcher, id), render.ProductPage)
}

// present runs one mount of a view: loading indicator, fetch cycle, paint.
func present[T any](ctx context.Context, s *Shell, view string, load viewstate.LoadFunc[T], build func(viewstate.State[T]) render.Page) error {
	logger := logging.FromContext(ctx)

	c := viewstate.Mount(ctx, load,
		viewstate.WithView[T](view),
		viewstate.WithTimeout[T](s.timeout),
		viewstate.WithObserver[T](func(state viewstate.State[T]) {
			if !state.IsLoading() {
				return
			}
			if err := s.status.RenderPage(s.statusW, build(state)); err != nil {
				logger.Debug().Err(err).Msg("Failed to show loading indicator")
			}
		}),
	)
	defer c.Unmount()

	state, err := c.Wait(ctx)
	if err != nil {
		return err
	}

	if err := s.renderer.RenderPage(s.out, build(state)); err != nil {
		return err
	}

	if msg, failed := state.Message(); failed {
		return &ViewError{View: view, Message: msg}
	}
	return nil
}

// IsViewError reports whether err is a view that settled in the error state.
func IsViewError(err error) bool {
	var ve *ViewError
	return stderrors.As(err, &ve)
}
