package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server holds the process configuration, read from the environment.
type Server struct {
	// Addr is the listen address for the websocket endpoint.
	Addr string `env:"TAKESIX_ADDR" envDefault:":6767"`

	// Seed fixes the shuffle rng for reproducible games; 0 means
	// time-seeded.
	Seed int64 `env:"TAKESIX_SEED"`

	BotsEnabled    bool   `env:"TAKESIX_BOTS_ENABLED"`
	BotCount       int    `env:"TAKESIX_BOT_COUNT" envDefault:"3"`
	BotMinDelaySec int    `env:"TAKESIX_BOT_MIN_DELAY_SEC" envDefault:"1"`
	BotMaxDelaySec int    `env:"TAKESIX_BOT_MAX_DELAY_SEC" envDefault:"3"`
	BotIdentities  string `env:"TAKESIX_BOT_IDENTITIES" envDefault:"data/bot_identities.json"`
}

// Load parses the server configuration from the environment.
func Load() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.BotMaxDelaySec < cfg.BotMinDelaySec {
		cfg.BotMaxDelaySec = cfg.BotMinDelaySec
	}
	return cfg, nil
}
