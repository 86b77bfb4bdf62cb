package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/agentstation/storefront/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestFetchError(t *testing.T) {
	t.Run("application failure", func(t *testing.T) {
		err := pkgerrors.NewApplicationError("products", 500, "Server error")
		assert.Equal(t, "fetch products (status 500): Server error", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrApplication))
		assert.True(t, errors.Is(err, pkgerrors.ErrUnavailable))
		assert.False(t, errors.Is(err, pkgerrors.ErrNetwork))
		assert.True(t, pkgerrors.IsApplication(err))
	})

	t.Run("not found status", func(t *testing.T) {
		err := pkgerrors.NewApplicationError("product", 404, "Failed to fetch product")
		assert.True(t, pkgerrors.IsNotFound(err))
		assert.False(t, errors.Is(err, pkgerrors.ErrUnavailable))
	})

	t.Run("network failure", func(t *testing.T) {
		cause := fmt.Errorf("%w: dial tcp", pkgerrors.ErrTimeout)
		err := pkgerrors.NewNetworkError("categories", "Failed to fetch categories", cause)
		assert.Equal(t, "fetch categories: Failed to fetch categories: operation timed out: dial tcp", err.Error())
		assert.True(t, pkgerrors.IsNetwork(err))
		assert.True(t, pkgerrors.IsTimeout(err))
		assert.False(t, pkgerrors.IsApplication(err))
	})

	t.Run("decode failure", func(t *testing.T) {
		err := pkgerrors.NewDecodeError("products", "Failed to fetch products", errors.New("unexpected EOF"))
		assert.True(t, errors.Is(err, pkgerrors.ErrMalformedResponse))
		assert.Equal(t, "decode", err.Kind.String())
	})
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"fetch error", pkgerrors.NewApplicationError("products", 500, "Server error"), "Server error"},
		{"wrapped fetch error", fmt.Errorf("home: %w", pkgerrors.NewNetworkError("products", "Failed to fetch products", nil)), "Failed to fetch products"},
		{"plain error", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgerrors.Message(tt.err))
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "limit",
			Message: "must not be negative",
		}
		assert.Equal(t, "validation failed for field limit: must not be negative", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestRouteError(t *testing.T) {
	err := &pkgerrors.RouteError{Path: "/nope", Err: pkgerrors.ErrNotFound}
	assert.Equal(t, "route /nope: not found", err.Error())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestConfigError(t *testing.T) {
	cause := errors.New("bad value")
	err := pkgerrors.NewConfigError("format", "invalid output format", cause)
	assert.Equal(t, "configuration error in format: invalid output format", err.Error())
	assert.ErrorIs(t, err, cause)

	err = pkgerrors.NewConfigError("", "missing api url", nil)
	assert.Equal(t, "configuration error: missing api url", err.Error())
}
