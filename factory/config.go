package factory

import "os"

// EnvStrategy is the environment variable naming the resolution strategy.
const EnvStrategy = "PORTAL_RESOLVER"

// Config holds configuration for the Loader. Strategy selection is the
// only external setting this layer reads.
type Config struct {
	// Strategy names the resolution strategy the Loader selects on
	// first use. Empty selects the built-in registry strategy.
	Strategy string
}

// DefaultConfig returns a Config selecting the built-in strategy.
func DefaultConfig() Config {
	return Config{}
}

// ConfigFromEnv reads the strategy name from PORTAL_RESOLVER. Call it
// once at process start; the Loader never re-reads the environment.
func ConfigFromEnv() Config {
	return Config{Strategy: os.Getenv(EnvStrategy)}
}
