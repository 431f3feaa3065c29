package config

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/dnd-combat-tracker/internal/domain/combat"
	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig   `envPrefix:"DISCORD_"`
	Redis     RedisConfig     `envPrefix:"REDIS_"`
	DND5E     DND5EConfig     `envPrefix:"DND5E_"`
	Rest      RestConfig      `envPrefix:"REST_"`
	Telemetry TelemetryConfig `envPrefix:"OTEL_"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"TOKEN,required,notEmpty"`
	AppID   string `env:"APP_ID,required,notEmpty"`
	GuildID string `env:"GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. URL wins over Addr when set.
type RedisConfig struct {
	URL      string `env:"URL"`
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// DND5EConfig holds D&D 5e API configuration. Monster import is off when
// Enabled is false.
type DND5EConfig struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// RestConfig holds the default recovery percentages for new encounters
type RestConfig struct {
	ShortHPPercent int `env:"SHORT_HP_PERCENT" envDefault:"50"`
	ShortMPPercent int `env:"SHORT_MP_PERCENT" envDefault:"50"`
	LongHPPercent  int `env:"LONG_HP_PERCENT" envDefault:"100"`
	LongMPPercent  int `env:"LONG_MP_PERCENT" envDefault:"100"`
}

type TelemetryConfig struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"dnd-combat-tracker"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Rest.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (r RestConfig) validate() error {
	for name, pct := range map[string]int{
		"REST_SHORT_HP_PERCENT": r.ShortHPPercent,
		"REST_SHORT_MP_PERCENT": r.ShortMPPercent,
		"REST_LONG_HP_PERCENT":  r.LongHPPercent,
		"REST_LONG_MP_PERCENT":  r.LongMPPercent,
	} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%s must be between 0 and 100, got %d", name, pct)
		}
	}
	return nil
}

// RestSettings converts the percentages into engine rest settings
func (r RestConfig) RestSettings() combat.RestSettings {
	return combat.RestSettings{
		ShortRest: combat.RestPercent{HPPercent: r.ShortHPPercent, MPPercent: r.ShortMPPercent},
		LongRest:  combat.RestPercent{HPPercent: r.LongHPPercent, MPPercent: r.LongMPPercent},
	}
}
