// Package config handles configuration loading and management for hitclient.
//
// It provides functionality for:
//   - Loading client profiles from JSON, YAML or TOML files
//   - Searching a directory for a config file by well-known names
//   - Default configuration values and merging of overrides
package config
