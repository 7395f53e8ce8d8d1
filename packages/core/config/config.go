package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config describes a client profile. Transport is "net" or "resty",
// LogBackend is "zerolog", "zap" or "none", LogFormat is "console" or "json".
type Config struct {
	BaseURL     string            `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty" toml:"baseUrl,omitempty"`
	BaseHeaders map[string]string `json:"baseHeaders,omitempty" yaml:"baseHeaders,omitempty" toml:"baseHeaders,omitempty"`
	OnlyPayload *bool             `json:"onlyPayload,omitempty" yaml:"onlyPayload,omitempty" toml:"onlyPayload,omitempty"`
	Transport   string            `json:"transport,omitempty" yaml:"transport,omitempty" toml:"transport,omitempty"`
	LogBackend  string            `json:"logBackend,omitempty" yaml:"logBackend,omitempty" toml:"logBackend,omitempty"`
	LogLevel    string            `json:"logLevel,omitempty" yaml:"logLevel,omitempty" toml:"logLevel,omitempty"`
	LogFormat   string            `json:"logFormat,omitempty" yaml:"logFormat,omitempty" toml:"logFormat,omitempty"`
}

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetOnlyPayload returns the only-payload setting, defaulting to false
func (c *Config) GetOnlyPayload() bool {
	return getBool(c.OnlyPayload, false)
}

// ConfigFilenames contains the possible config file names, in search order
var ConfigFilenames = []string{
	".hitclient.json",
	"hitclient.json",
	".hitclient.yaml",
	".hitclient.yml",
	".hitclient.toml",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	return DefaultConfig(), nil
}

// loadConfigFromFile decodes a file according to its extension. Files
// without a known extension are read as JSON.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	case ".toml":
		err = toml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the names of the transport and log settings
func (c *Config) Validate() error {
	switch c.Transport {
	case "", TransportNet, TransportResty:
	default:
		return fmt.Errorf("unknown transport %q (expected %s or %s)", c.Transport, TransportNet, TransportResty)
	}

	switch c.LogBackend {
	case "", "zerolog", "zap", "none":
	default:
		return fmt.Errorf("unknown log backend %q (expected zerolog, zap or none)", c.LogBackend)
	}

	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("unknown log format %q (expected console or json)", c.LogFormat)
	}

	return nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.BaseURL != "" {
		result.BaseURL = other.BaseURL
	}
	if other.OnlyPayload != nil {
		result.OnlyPayload = other.OnlyPayload
	}
	if other.Transport != "" {
		result.Transport = other.Transport
	}
	if other.LogBackend != "" {
		result.LogBackend = other.LogBackend
	}
	if other.LogLevel != "" {
		result.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		result.LogFormat = other.LogFormat
	}

	// Merge headers into a fresh map so c is left untouched
	if len(other.BaseHeaders) > 0 {
		headers := make(map[string]string, len(c.BaseHeaders)+len(other.BaseHeaders))
		for k, v := range c.BaseHeaders {
			headers[k] = v
		}
		for k, v := range other.BaseHeaders {
			headers[k] = v
		}
		result.BaseHeaders = headers
	}

	return &result
}

// SaveConfig writes the configuration to path, picking YAML, TOML or
// indented JSON from the file extension the same way loading does.
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		data, err = toml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
