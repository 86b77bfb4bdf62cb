// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App so they can be tested with a Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/storefront/internal/shell"
	"github.com/agentstation/storefront/pkg/fetcher"
)

// Interface defines the application context interface that commands need.
type Interface interface {
	// Fetcher returns the catalog API client, creating it lazily if needed.
	Fetcher() (fetcher.Fetcher, error)

	// Shell returns the view host that commands navigate with.
	Shell() (*shell.Shell, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
