package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"chessington/chessboard"
)

// Prefix is prepended to every environment variable, e.g. CHESSINGTON_DEPTH.
const Prefix = "chessington"

// Configuration holds defaults for the command-line tools. Flags override it.
type Configuration struct {
	FEN        string   `envconfig:"FEN"`
	Depth      int      `envconfig:"DEPTH" default:"0"`
	Repeat     int      `envconfig:"REPEAT" default:"1"`
	Divide     bool     `envconfig:"DIVIDE" default:"false"`
	CrossCheck bool     `envconfig:"CROSS_CHECK" default:"false"`
	References []string `envconfig:"REFERENCES" default:"dragontoothmg,notnil/chess"`
}

// Load reads the configuration from the environment.
func Load() (*Configuration, error) {
	var cfg Configuration
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.FEN == "" {
		cfg.FEN = chessboard.FENStartPos
	}
	if cfg.Repeat < 1 {
		return nil, fmt.Errorf("config: CHESSINGTON_REPEAT must be >= 1, got %d", cfg.Repeat)
	}
	return &cfg, nil
}
