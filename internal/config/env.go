package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds environment overrides for the CLI flag defaults.
// Flags given on the command line still win.
type Env struct {
	FPS     int    `env:"INVADERS_FPS" envDefault:"100"`
	DBPath  string `env:"INVADERS_DB"`
	LogPath string `env:"INVADERS_LOG"`
	Config  string `env:"INVADERS_CONFIG"`
	SSHAddr string `env:"INVADERS_SSH_ADDR" envDefault:":23234"`
}

// ParseEnv loads the overrides from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
