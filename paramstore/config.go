package paramstore

// Config holds configuration for the ParameterStore.
type Config struct {
	// Separator is the path separator used when deriving suffix paths,
	// trimming listing keys and splitting nested tree segments.
	// Default: "/"
	Separator string
}

// DefaultConfig returns the configuration matching SSM's own path
// conventions.
func DefaultConfig() Config {
	return Config{
		Separator: "/",
	}
}

// validate ensures config values are usable.
func (c *Config) validate() {
	if c.Separator == "" {
		c.Separator = "/"
	}
}
