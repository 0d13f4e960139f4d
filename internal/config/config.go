// Package config loads settings for the vocal binaries from the environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/zephyrtronium/vocal"
)

type Config struct {
	// Prec is the precision of calculations in bits.
	Prec uint
	// Format is the fmt verb used to present results.
	Format string
	// SpokenNumbers enables spelled-out numbers.
	SpokenNumbers bool
	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// BusURL is the websocket address of the message bus.
	BusURL string
	// Shard is the name this process answers to on the bus.
	Shard string
	// Proxy is a SOCKS5 proxy address for the bus, if any.
	Proxy string
	// Reconnect is the delay between attempts to reach the bus.
	Reconnect time.Duration
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads envFile, if it exists, into the environment without overriding
// variables that are already set, then builds a Config from the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	prec, err := strconv.ParseUint(getEnv("VOCAL_PREC", strconv.Itoa(vocal.DefaultPrec)), 10, 32)
	if err != nil || prec == 0 {
		return nil, fmt.Errorf("VOCAL_PREC must be a positive integer: %q", os.Getenv("VOCAL_PREC"))
	}
	words, err := strconv.ParseBool(getEnv("VOCAL_SPOKEN_NUMBERS", "false"))
	if err != nil {
		return nil, fmt.Errorf("VOCAL_SPOKEN_NUMBERS: %w", err)
	}
	reconn, err := time.ParseDuration(getEnv("VOCAL_RECONNECT", "1s"))
	if err != nil {
		return nil, fmt.Errorf("VOCAL_RECONNECT: %w", err)
	}

	return &Config{
		Prec:          uint(prec),
		Format:        getEnv("VOCAL_FORMAT", vocal.DefaultFormat),
		SpokenNumbers: words,
		LogLevel:      getEnv("VOCAL_LOG", "info"),

		BusURL:    getEnv("VOCAL_BUS_URL", "ws://localhost:8092/ws"),
		Shard:     getEnv("VOCAL_SHARD", "vocal"),
		Proxy:     os.Getenv("VOCAL_PROXY"),
		Reconnect: reconn,
	}, nil
}

// Options returns the evaluation options the config describes.
func (c *Config) Options() []vocal.ContextOption {
	return []vocal.ContextOption{
		vocal.Prec(c.Prec),
		vocal.SpokenNumbers(c.SpokenNumbers),
	}
}
