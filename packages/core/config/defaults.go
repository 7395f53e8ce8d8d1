package config

// Transport names accepted in Config.Transport
const (
	TransportNet   = "net"
	TransportResty = "resty"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     "",
		BaseHeaders: nil,
		OnlyPayload: BoolPtr(false),
		Transport:   TransportNet,
		LogBackend:  "zerolog",
		LogLevel:    "info",
		LogFormat:   "console",
	}
}
