package app

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/storefront/internal/cmd/globals"
	"github.com/agentstation/storefront/internal/cmd/output"
	"github.com/agentstation/storefront/pkg/constants"
	"github.com/agentstation/storefront/pkg/views"
)

// EnvPrefix is the prefix of every storefront environment variable.
const EnvPrefix = "STOREFRONT"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog API
	APIURL         string
	APIToken       string
	APITokenHeader string
	HTTPTimeout    time.Duration
	ViewTimeout    time.Duration

	// Page sizes
	Views views.Config

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags that were set explicitly
// 2. Environment variables (STOREFRONT_*)
// 3. .env files
// 4. Config file (configFile, or .storefront.yaml in $HOME or the working directory)
// 5. Defaults
//
// flags may be nil before the command line has been parsed.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if flags != nil {
		for name, key := range globals.ConfigKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".storefront")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit or broken one is not
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		APIURL:         strings.TrimRight(v.GetString("api_url"), "/"),
		APIToken:       v.GetString("api_token"),
		APITokenHeader: v.GetString("api_token_header"),
		HTTPTimeout:    v.GetDuration("timeout"),
		ViewTimeout:    v.GetDuration("view_timeout"),

		Views: views.Config{
			CategoriesLimit: v.GetInt("categories_limit"),
			ProductsLimit:   v.GetInt("products_limit"),
			ProductsOffset:  v.GetInt("products_offset"),
		},

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	if _, err := output.ParseFormat(config.Format); err != nil {
		return nil, err
	}

	return config, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it.
func setDefaults(v *viper.Viper) {
	defaults := views.DefaultConfig()

	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("no_color", os.Getenv("NO_COLOR") != "")
	v.SetDefault("format", "")
	v.SetDefault("api_url", constants.DefaultAPIURL)
	v.SetDefault("api_token", "")
	v.SetDefault("api_token_header", "")
	v.SetDefault("timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("view_timeout", constants.DefaultViewTimeout)
	v.SetDefault("categories_limit", defaults.CategoriesLimit)
	v.SetDefault("products_limit", defaults.ProductsLimit)
	v.SetDefault("products_offset", defaults.ProductsOffset)
	v.SetDefault("log_level", "")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
