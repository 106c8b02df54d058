package uritemplate

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the uritemplate project configuration
type Config struct {
	// Templates are inline template definitions, tried in order.
	Templates []string `yaml:"templates"`
	// Catalogs are paths to template catalog files loaded into the registry.
	Catalogs []string     `yaml:"catalogs"`
	Output   OutputConfig `yaml:"output"`
}

// OutputConfig controls how CLI results are rendered
type OutputConfig struct {
	Format string `yaml:"format"` // json, text
	Pretty bool   `yaml:"pretty"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	switch config.Output.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("%w: invalid output format '%s': must be json or text", ErrConfigValidation, config.Output.Format)
	}

	return nil
}

func applyDefaults(config *Config) {
	if config.Output.Format == "" {
		config.Output.Format = "json"
	}
}

func getDefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "json",
			Pretty: true,
		},
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	// Pattern for $VAR format (word boundaries)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in catalog paths
func expandConfigEnvVars(config *Config) {
	for i, path := range config.Catalogs {
		config.Catalogs[i] = expandEnvVars(path)
	}
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
