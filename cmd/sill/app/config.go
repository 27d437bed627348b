package app

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/etalab/sill-data/pkg/constants"
	"github.com/etalab/sill-data/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files. Command-line flags are applied on
// top of it once cobra has parsed them.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Data locations
	DataDir  string
	BuildDir string

	// LogLevel is the --log-level flag; EnvLogLevel comes from LOG_LEVEL.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. Environment variables (SILL_DATA_DIR, SILL_BUILD_DIR, LOG_*)
//  3. .env files
//  4. Config file (.sill.yaml in the working or home directory, or SILL_CONFIG)
//  5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig("")
}

// LoadConfigFile is LoadConfig with an explicit config file.
func LoadConfigFile(path string) (*Config, error) {
	return loadConfig(path)
}

func loadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix("sill")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", constants.DefaultDataDir)
	v.SetDefault("build_dir", "")

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".sill")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "cannot read "+v.ConfigFileUsed(), err)
		}
	}

	return &Config{
		Verbose:     v.GetBool("verbose"),
		Quiet:       v.GetBool("quiet"),
		NoColor:     v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		ConfigFile:  v.ConfigFileUsed(),
		DataDir:     v.GetString("data_dir"),
		BuildDir:    v.GetString("build_dir"),
		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// UpdateFromFlags updates config values from parsed command flags.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = c.NoColor || noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are kept.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
