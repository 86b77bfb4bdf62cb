package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/storefront/internal/shell"
	"github.com/agentstation/storefront/pkg/fetcher"
	"github.com/agentstation/storefront/pkg/logging"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	FetcherFunc      func() (fetcher.Fetcher, error)
	ShellFunc        func() (*shell.Shell, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

var _ Interface = (*Mock)(nil)

// Fetcher returns a fetcher using the mock function or nil.
func (m *Mock) Fetcher() (fetcher.Fetcher, error) {
	if m.FetcherFunc != nil {
		return m.FetcherFunc()
	}
	return nil, nil
}

// Shell returns a shell using the mock function, or one built on Fetcher.
func (m *Mock) Shell() (*shell.Shell, error) {
	if m.ShellFunc != nil {
		return m.ShellFunc()
	}
	f, err := m.Fetcher()
	if err != nil {
		return nil, err
	}
	return shell.New(f), nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// OutputFormat returns the output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns the version using the mock function or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Commit returns the commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns the date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns the builder using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}
