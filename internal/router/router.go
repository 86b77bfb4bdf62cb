// Package router resolves storefront paths to view handlers.
//
// It uses a chi mux as an in-process path matcher: Navigate dispatches a
// synthetic GET request through the mux and returns the bound handler's
// error. Nothing is served over the network.
package router

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/agentstation/storefront/pkg/constants"
	"github.com/agentstation/storefront/pkg/errors"
	"github.com/agentstation/storefront/pkg/logging"
	"github.com/agentstation/storefront/pkg/render"
)

// Params holds the path parameters of a resolved route.
type Params map[string]string

// Handler activates a view.
type Handler func(ctx context.Context, params Params) error

// Routes binds each storefront path to its handler. A nil handler makes
// the path resolve to errors.ErrNotImplemented.
type Routes struct {
	Home       Handler
	Products   Handler
	NewProduct Handler
	Product    Handler
}

// ParamID is the path parameter of the product detail route.
const ParamID = "id"

// Router implements render.Router on top of chi.
type Router struct {
	mux *chi.Mux

	mu      sync.Mutex
	history []string
}

var _ render.Router = (*Router)(nil)

// New creates a router for routes.
func New(routes Routes) *Router {
	r := &Router{mux: chi.NewRouter()}

	r.mux.Use(logRequest)
	r.mux.Get(constants.RouteHome, bind(routes.Home))
	r.mux.Get(constants.RouteProducts, bind(routes.Products))
	r.mux.Get(constants.RouteNewProduct, bind(routes.NewProduct))
	r.mux.Get(constants.RouteProducts+"/{"+ParamID+"}", bind(routes.Product))
	r.mux.NotFound(func(_ http.ResponseWriter, req *http.Request) {
		setUnrouted(req.Context(), errors.ErrNotFound)
	})
	r.mux.MethodNotAllowed(func(_ http.ResponseWriter, req *http.Request) {
		setUnrouted(req.Context(), errors.ErrNotFound)
	})

	return r
}

// Navigate records path in the history and runs the handler bound to it.
// Unknown paths return an error matching errors.ErrNotFound.
func (r *Router) Navigate(ctx context.Context, path string) error {
	path = Clean(path)

	r.mu.Lock()
	r.history = append(r.history, path)
	r.mu.Unlock()

	res := &result{}
	ctx = context.WithValue(ctx, resultKey{}, res)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return &errors.RouteError{Path: path, Err: errors.ErrNotFound}
	}

	r.mux.ServeHTTP(discard{}, req)

	if res.unrouted != nil {
		return &errors.RouteError{Path: path, Err: res.unrouted}
	}
	return res.err
}

// Link returns a link to path.
func (r *Router) Link(path, label string) render.Link {
	return render.NewLink(Clean(path), label)
}

// Match reports whether path resolves to a route.
func (r *Router) Match(path string) bool {
	rctx := chi.NewRouteContext()
	return r.mux.Match(rctx, http.MethodGet, Clean(path))
}

// History returns the paths navigated to, oldest first.
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// Current returns the most recently navigated path, or "" before any navigation.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return ""
	}
	return r.history[len(r.history)-1]
}

// Clean normalizes path to a rooted path with a single leading slash and no
// trailing slash. Repeated leading slashes would otherwise parse as a host.
func Clean(path string) string {
	path = "/" + strings.Trim(strings.TrimSpace(path), "/")
	return path
}

func bind(h Handler) http.HandlerFunc {
	return func(_ http.ResponseWriter, req *http.Request) {
		if h == nil {
			setUnrouted(req.Context(), errors.ErrNotImplemented)
			return
		}

		params := Params{}
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				params[key] = rctx.URLParams.Values[i]
			}
		}
		setResult(req.Context(), h(req.Context(), params))
	}
}

func logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logging.FromContext(req.Context()).Debug().
			Str("path", req.URL.Path).
			Msg("Navigating")
		next.ServeHTTP(w, req)
	})
}

type resultKey struct{}

// result carries the outcome of one dispatch back to Navigate.
// unrouted is set when no handler ran.
type result struct {
	err      error
	unrouted error
}

func setResult(ctx context.Context, err error) {
	if res, ok := ctx.Value(resultKey{}).(*result); ok {
		res.err = err
	}
}

func setUnrouted(ctx context.Context, err error) {
	if res, ok := ctx.Value(resultKey{}).(*result); ok {
		res.unrouted = err
	}
}

// discard is the response writer handed to the mux; views write their own output.
type discard struct{}

func (discard) Header() http.Header         { return http.Header{} }
func (discard) Write(b []byte) (int, error) { return len(b), nil }
func (discard) WriteHeader(int)             {}
