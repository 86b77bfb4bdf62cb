package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storefront/internal/cmd/output"
	"github.com/agentstation/storefront/pkg/catalogs"
	"github.com/agentstation/storefront/pkg/constants"
	"github.com/agentstation/storefront/pkg/errors"
	"github.com/agentstation/storefront/pkg/fetcher"
	"github.com/agentstation/storefront/pkg/render"
)

// catalogAPI serves a small fixed catalog.
func catalogAPI(t *testing.T, productsStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		if productsStatus != http.StatusOK {
			w.WriteHeader(productsStatus)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "Server error"})
			return
		}
		_ = json.NewEncoder(w).Encode([]catalogs.Product{
			{ID: 1, Title: "Shirt", Price: 20, Images: []string{}, CreationAt: "2024-01-01T00:00:00.000Z"},
			{ID: 2, Title: "Shoes", Price: 55.5, CreationAt: "2024-03-01T00:00:00.000Z"},
		})
	})
	mux.HandleFunc("/products/2", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(catalogs.Product{ID: 2, Title: "Shoes", Price: 55.5})
	})
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]catalogs.Category{{ID: 1, Name: "Clothes"}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newShell(t *testing.T, srv *httptest.Server, out, status *bytes.Buffer, opts ...Option) *Shell {
	t.Helper()
	f := fetcher.New(fetcher.WithBaseURL(srv.URL), fetcher.WithHTTPClient(srv.Client()))
	opts = append([]Option{WithOutput(out), WithStatus(status)}, opts...)
	return New(f, opts...)
}

func TestNavigateHome(t *testing.T) {
	var out, status bytes.Buffer
	s := newShell(t, catalogAPI(t, http.StatusOK), &out, &status)

	require.NoError(t, s.Navigate(context.Background(), "/"))
	assert.Equal(t, "Loading...\n", status.String())
	assert.Contains(t, out.String(), "Featured products")
	assert.Contains(t, out.String(), "Clothes")
	assert.Contains(t, out.String(), "/products/2")
	assert.NotContains(t, out.String(), "Loading")
	assert.Equal(t, []string{"/"}, s.Router().History())
}

func TestNavigateProductsStructured(t *testing.T) {
	var out, status bytes.Buffer
	s := newShell(t, catalogAPI(t, http.StatusOK), &out, &status,
		WithRenderer(render.New(output.FormatJSON)))

	require.NoError(t, s.Navigate(context.Background(), "/products"))
	assert.Equal(t, "Loading products...\n", status.String(), "loading indicator stays plain text")

	var page render.Page
	require.NoError(t, json.Unmarshal(out.Bytes(), &page))
	section, ok := page.Section(render.SectionProducts)
	require.True(t, ok)
	require.Len(t, section.Cards, 2)
	assert.Equal(t, constants.PlaceholderImageURL, section.Cards[0].Image)
	assert.Equal(t, "$55.5", section.Cards[1].Price)
}

// TestNavigateServerError paints the server message and returns a ViewError.
func TestNavigateServerError(t *testing.T) {
	var out, status bytes.Buffer
	s := newShell(t, catalogAPI(t, http.StatusInternalServerError), &out, &status)

	err := s.Navigate(context.Background(), "/products")
	require.Error(t, err)
	assert.True(t, IsViewError(err))

	var ve *ViewError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Server error", ve.Message)
	assert.Equal(t, "Server error\n", out.String())
}

func TestNavigateProduct(t *testing.T) {
	var out, status bytes.Buffer
	s := newShell(t, catalogAPI(t, http.StatusOK), &out, &status)

	require.NoError(t, s.Navigate(context.Background(), "/products/2"))
	assert.Equal(t, "Loading product...\n", status.String())
	assert.Contains(t, out.String(), "Shoes")
	assert.Contains(t, out.String(), "$55.5")
}

func TestNavigateInvalidProductID(t *testing.T) {
	var out, status bytes.Buffer
	s := newShell(t, catalogAPI(t, http.StatusOK), &out, &status)

	err := s.Navigate(context.Background(), "/products/abc")
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, status.String(), "no view is mounted")
}

func TestNavigateNewProduct(t *testing.T) {
	var out, status bytes.Buffer
	s := newShell(t, catalogAPI(t, http.StatusOK), &out, &status)

	err := s.Navigate(context.Background(), "/products/new")
	assert.ErrorIs(t, err, errors.ErrNotImplemented)
}

func TestNavigateCanceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	var out, status bytes.Buffer
	s := newShell(t, srv, &out, &status)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.Navigate(ctx, "/products")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, out.String(), "an unmounted view paints nothing")
}

func TestNavigateViewTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	var out, status bytes.Buffer
	s := newShell(t, srv, &out, &status, WithViewTimeout(50*time.Millisecond))

	err := s.Navigate(context.Background(), "/products")
	require.Error(t, err)
	assert.Equal(t, "Request timed out\n", out.String())
}
