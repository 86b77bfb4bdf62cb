// Package fetcher retrieves raw product and category collections from the
// remote catalog API. Every failure, whether the API was unreachable or
// answered with an error status, is returned as a *errors.FetchError whose
// Message is ready to show to a user.
package fetcher

import (
	"context"
	stderrors "errors"
	"strconv"
	"time"

	"github.com/agentstation/storefront/internal/transport"
	"github.com/agentstation/storefront/pkg/catalogs"
	"github.com/agentstation/storefront/pkg/constants"
	"github.com/agentstation/storefront/pkg/errors"
	"github.com/agentstation/storefront/pkg/logging"
)

// Resource names used in errors and log fields.
const (
	ResourceProducts   = "products"
	ResourceCategories = "categories"
	ResourceProduct    = "product"
)

// Fetcher is the read-only contract the views depend on.
type Fetcher interface {
	// FetchProducts returns one page of products.
	FetchProducts(ctx context.Context, limit, offset int) ([]catalogs.Product, error)

	// FetchCategories returns up to limit categories.
	FetchCategories(ctx context.Context, limit int) ([]catalogs.Category, error)

	// FetchProduct returns a single product by identifier.
	FetchProduct(ctx context.Context, id int) (catalogs.Product, error)
}

// Client implements Fetcher over HTTP. It holds no cache and never retries;
// it is safe for concurrent use.
type Client struct {
	baseURL   string
	transport *transport.Client
}

var _ Fetcher = (*Client)(nil)

// New creates a catalog API client.
func New(opts ...Option) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var topts []transport.Option
	if cfg.httpClient != nil {
		topts = append(topts, transport.WithHTTPClient(cfg.httpClient))
	} else {
		topts = append(topts, transport.WithTimeout(cfg.timeout))
	}
	if cfg.token != "" {
		topts = append(topts, transport.WithAuth(transport.AuthenticatorFor(cfg.token, cfg.tokenHeader), cfg.token))
	}

	return &Client{
		baseURL:   cfg.baseURL,
		transport: transport.New(topts...),
	}
}

// BaseURL returns the catalog API base URL the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchProducts issues GET /products?limit={limit}&offset={offset}.
// A zero limit or offset omits the parameter.
func (c *Client) FetchProducts(ctx context.Context, limit, offset int) ([]catalogs.Product, error) {
	if limit < 0 {
		return nil, errors.NewValidationError("limit", limit, "must not be negative")
	}
	if offset < 0 {
		return nil, errors.NewValidationError("offset", offset, "must not be negative")
	}

	params := map[string]int{"limit": omitZero(limit), "offset": omitZero(offset)}
	var products []catalogs.Product
	if err := c.get(ctx, ResourceProducts, constants.MsgProductsFailed, constants.ProductsPath, params, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []catalogs.Product{}
	}
	return products, nil
}

// FetchCategories issues GET /categories?limit={limit}.
func (c *Client) FetchCategories(ctx context.Context, limit int) ([]catalogs.Category, error) {
	if limit < 0 {
		return nil, errors.NewValidationError("limit", limit, "must not be negative")
	}

	params := map[string]int{"limit": omitZero(limit)}
	var categories []catalogs.Category
	if err := c.get(ctx, ResourceCategories, constants.MsgCategoriesFailed, constants.CategoriesPath, params, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []catalogs.Category{}
	}
	return categories, nil
}

// FetchProduct issues GET /products/{id}.
func (c *Client) FetchProduct(ctx context.Context, id int) (catalogs.Product, error) {
	if id <= 0 {
		return catalogs.Product{}, errors.NewValidationError("id", id, "must be positive")
	}

	var product catalogs.Product
	path := constants.ProductsPath + "/" + strconv.Itoa(id)
	if err := c.get(ctx, ResourceProduct, constants.MsgProductFailed, path, nil, &product); err != nil {
		return catalogs.Product{}, err
	}
	return product, nil
}

// get performs one request and normalizes every failure into a FetchError.
func (c *Client) get(ctx context.Context, resource, generic, path string, params map[string]int, target any) error {
	logger := logging.FromContext(logging.WithResource(ctx, resource))

	url, err := transport.BuildURL(c.baseURL, path, params)
	if err != nil {
		return errors.NewNetworkError(resource, generic, err)
	}

	start := time.Now()
	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		logger.Debug().Err(err).Str("url", url).Msg("Catalog request failed")
		return errors.NewNetworkError(resource, generic, classifyTransport(ctx, err))
	}

	err = transport.DecodeResponse(resp, target)
	logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Catalog request completed")

	var statusErr *transport.StatusError
	var decodeErr *transport.DecodeError
	switch {
	case err == nil:
		return nil
	case stderrors.As(err, &statusErr):
		message := statusErr.Message
		if message == "" {
			message = generic
		}
		return errors.NewApplicationError(resource, statusErr.StatusCode, message)
	case stderrors.As(err, &decodeErr):
		return errors.NewDecodeError(resource, generic, decodeErr.Err)
	default:
		return errors.NewNetworkError(resource, generic, err)
	}
}

// classifyTransport tags context-driven transport failures with the matching sentinel.
func classifyTransport(ctx context.Context, err error) error {
	switch {
	case stderrors.Is(ctx.Err(), context.DeadlineExceeded), stderrors.Is(err, context.DeadlineExceeded):
		return stderrors.Join(errors.ErrTimeout, err)
	case stderrors.Is(ctx.Err(), context.Canceled), stderrors.Is(err, context.Canceled):
		return stderrors.Join(errors.ErrCanceled, err)
	default:
		return err
	}
}

func omitZero(v int) int {
	if v == 0 {
		return -1
	}
	return v
}
