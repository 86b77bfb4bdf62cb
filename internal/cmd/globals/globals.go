// Package globals provides the persistent flags shared by every command.
package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/storefront/pkg/constants"
)

// Flag names registered by AddFlags.
const (
	FlagConfig   = "config"
	FlagVerbose  = "verbose"
	FlagQuiet    = "quiet"
	FlagNoColor  = "no-color"
	FlagFormat   = "format"
	FlagLogLevel = "log-level"
	FlagAPIURL   = "api-url"
	FlagTimeout  = "timeout"
)

// ConfigKeys maps each flag that overrides configuration to its config key.
var ConfigKeys = map[string]string{
	FlagVerbose:  "verbose",
	FlagQuiet:    "quiet",
	FlagNoColor:  "no_color",
	FlagFormat:   "format",
	FlagLogLevel: "log_level",
	FlagAPIURL:   "api_url",
	FlagTimeout:  "timeout",
}

// AddFlags adds the global flags to the root command.
func AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(FlagConfig, "", "config file (default is $HOME/.storefront.yaml)")
	flags.BoolP(FlagVerbose, "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP(FlagQuiet, "q", false, "minimal output, hides loading indicators (shortcut for --log-level=warn)")
	flags.Bool(FlagNoColor, false, "disable colored output")
	flags.StringP(FlagFormat, "o", "", "output format: table, wide, json, yaml")
	flags.String(FlagLogLevel, "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.String(FlagAPIURL, constants.DefaultAPIURL, "catalog API base URL")
	flags.Duration(FlagTimeout, constants.DefaultHTTPTimeout, "per-request timeout")
}

// ConfigFile returns the --config value from the command hierarchy.
func ConfigFile(cmd *cobra.Command) string {
	value, _ := cmd.Flags().GetString(FlagConfig)
	return value
}
