// Package app provides the application context and dependency management
// for the storefront CLI. It centralizes configuration, logging and the
// catalog client so commands only depend on appcontext.Interface.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/storefront/internal/appcontext"
	"github.com/agentstation/storefront/internal/cmd/output"
	"github.com/agentstation/storefront/internal/shell"
	"github.com/agentstation/storefront/pkg/errors"
	"github.com/agentstation/storefront/pkg/fetcher"
	"github.com/agentstation/storefront/pkg/render"
)

// App represents the storefront application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	stdout io.Writer
	stderr io.Writer

	// Lazily created, shared by all commands
	mu      sync.RWMutex
	fetcher fetcher.Fetcher
}

var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	config, err := LoadConfig("", nil)
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Fetcher returns the catalog API client, creating it lazily if needed.
// This is thread-safe and ensures only one client is created.
func (a *App) Fetcher() (fetcher.Fetcher, error) {
	a.mu.RLock()
	if a.fetcher != nil {
		f := a.fetcher
		a.mu.RUnlock()
		return f, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.fetcher != nil {
		return a.fetcher, nil
	}

	if a.config.APIURL == "" {
		return nil, errors.NewConfigError("api_url", "catalog API URL is empty", nil)
	}

	a.fetcher = fetcher.New(a.buildFetcherOptions()...)
	return a.fetcher, nil
}

// Shell returns a view host bound to the configured output.
func (a *App) Shell() (*shell.Shell, error) {
	f, err := a.Fetcher()
	if err != nil {
		return nil, err
	}

	format := output.DetectFormat(a.config.Format, fdOf(a.stdout))

	var status io.Writer
	if !a.config.Quiet {
		status = a.stderr
	}

	return shell.New(f,
		shell.WithViews(a.config.Views),
		shell.WithRenderer(render.New(format)),
		shell.WithOutput(a.stdout),
		shell.WithStatus(status),
		shell.WithViewTimeout(a.config.ViewTimeout),
	), nil
}

// Shutdown performs graceful shutdown of the application.
// Views unmount when their command returns, so there is nothing left to stop.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Debug().Err(ctx.Err()).Msg("Shutting down")
	return nil
}

// buildFetcherOptions constructs fetcher options from the app configuration.
func (a *App) buildFetcherOptions() []fetcher.Option {
	opts := []fetcher.Option{
		fetcher.WithBaseURL(a.config.APIURL),
	}

	if a.config.HTTPTimeout > 0 {
		opts = append(opts, fetcher.WithTimeout(a.config.HTTPTimeout))
	}

	if a.config.APIToken != "" {
		opts = append(opts, fetcher.WithToken(a.config.APIToken, a.config.APITokenHeader))
	}

	return opts
}

// fdOf returns the file descriptor of w, or an invalid descriptor when w is
// not a file.
func fdOf(w io.Writer) uintptr {
	if f, ok := w.(*os.File); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFetcher sets a custom catalog client (useful for testing).
func WithFetcher(f fetcher.Fetcher) Option {
	return func(a *App) error {
		a.fetcher = f
		return nil
	}
}

// WithOutput sets the writers for pages and status messages.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) error {
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
		return nil
	}
}
