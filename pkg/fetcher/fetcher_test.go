package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storefront/pkg/errors"
)

const productsJSON = `[
	{"id": 1, "title": "Hat", "price": 10, "images": ["https://img/1.jpg"], "category": {"id": 2, "name": "Clothes"}, "creationAt": "2025-01-01T00:00:00.000Z"},
	{"id": 2, "title": "Shoe", "price": 20.5, "images": [], "creationAt": "2025-02-01T00:00:00.000Z"}
]`

// newTestServer serves canned catalog responses keyed by path.
func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(WithBaseURL(server.URL+"/api/v1/"), WithTimeout(5*time.Second))
}

func TestFetchProducts(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("limit"))
		assert.Equal(t, "1", r.URL.Query().Get("offset"))
		w.Write([]byte(productsJSON))
	})

	products, err := client.FetchProducts(context.Background(), 12, 1)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Hat", products[0].Title)
	assert.Equal(t, "Clothes", products[0].CategoryName())
	assert.Empty(t, products[1].Images)
	assert.Nil(t, products[1].Category)
}

func TestFetchProductsOmitsZeroParams(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`null`))
	})

	products, err := client.FetchProducts(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestFetchCategories(t *testing.T) {
	t.Run("returns categories", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/categories", r.URL.Path)
			assert.Equal(t, "4", r.URL.Query().Get("limit"))
			w.Write([]byte(`[{"id": 1, "name": "Clothes", "image": "https://img/c.jpg"}, {"id": 2, "name": "Misc"}]`))
		})

		categories, err := client.FetchCategories(context.Background(), 4)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "https://img/c.jpg", categories[0].Image)
		assert.Empty(t, categories[1].Image)
	})

	t.Run("empty collection is not an error", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		categories, err := client.FetchCategories(context.Background(), 4)
		require.NoError(t, err)
		assert.Empty(t, categories)
	})
}

func TestFetchProduct(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/products/9" {
			w.Write([]byte(`{"id": 9, "title": "Lamp", "images": ["https://img/9.jpg"]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Could not find any entity of type \"Product\""}`))
	})

	product, err := client.FetchProduct(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", product.Title)

	_, err = client.FetchProduct(context.Background(), 10)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, `Could not find any entity of type "Product"`, errors.Message(err))

	_, err = client.FetchProduct(context.Background(), 0)
	assert.True(t, errors.IsValidationError(err))
}

func TestFetchFailures(t *testing.T) {
	t.Run("server message is surfaced verbatim", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "Server error"}`))
		})

		_, err := client.FetchProducts(context.Background(), 12, 1)
		require.Error(t, err)

		var fe *errors.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, errors.KindApplication, fe.Kind)
		assert.Equal(t, 500, fe.StatusCode)
		assert.Equal(t, "Server error", errors.Message(err))
	})

	t.Run("missing message falls back to generic", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`<html>bad gateway</html>`))
		})

		_, err := client.FetchCategories(context.Background(), 4)
		require.Error(t, err)
		assert.True(t, errors.IsApplication(err))
		assert.Equal(t, "Failed to fetch categories", errors.Message(err))
	})

	t.Run("undecodable body", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": "not-a-list"}`))
		})

		_, err := client.FetchProducts(context.Background(), 12, 1)
		require.Error(t, err)
		var fe *errors.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, errors.KindDecode, fe.Kind)
		assert.Equal(t, "Failed to fetch products", fe.Message)
	})

	t.Run("unreachable API is a network failure", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := New(WithBaseURL(url))
		_, err := client.FetchProducts(context.Background(), 12, 1)
		require.Error(t, err)
		assert.True(t, errors.IsNetwork(err))
		assert.Equal(t, "Failed to fetch products", errors.Message(err))
	})

	t.Run("negative arguments are rejected before I/O", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		})

		_, err := client.FetchProducts(context.Background(), -1, 0)
		assert.True(t, errors.IsValidationError(err))
		_, err = client.FetchProducts(context.Background(), 1, -5)
		assert.True(t, errors.IsValidationError(err))
		_, err = client.FetchCategories(context.Background(), -2)
		assert.True(t, errors.IsValidationError(err))
		assert.Zero(t, calls.Load())
	})

	t.Run("canceled context", func(t *testing.T) {
		release := make(chan struct{})
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.FetchProducts(ctx, 12, 1)
		require.Error(t, err)
		assert.True(t, errors.IsNetwork(err))
		assert.True(t, errors.IsCanceled(err))
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		release := make(chan struct{})
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.FetchCategories(ctx, 4)
		require.Error(t, err)
		assert.True(t, errors.IsTimeout(err))
	})
}

func TestWithToken(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc", r.Header.Get("X-Api-Key"))
		w.Write([]byte(`[]`))
	})
	client = New(WithBaseURL(client.BaseURL()), WithToken("abc", "X-Api-Key"))

	_, err := client.FetchCategories(context.Background(), 1)
	require.NoError(t, err)
}
