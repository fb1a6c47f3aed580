package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when neither a path argument nor CONFIG_PATH is given.
const DefaultPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// The file is path when non-empty (the --config flag), else CONFIG_PATH,
// else DefaultPath. A file named explicitly must exist; a missing
// DefaultPath means ENV + defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	explicit := true
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path, explicit = DefaultPath, false
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// normalize trims values that are later joined into URLs or compared to
// catalog locales.
func (c *Config) normalize() {
	c.Stripe.AppURL = strings.TrimRight(strings.TrimSpace(c.Stripe.AppURL), "/")
	c.Storage.PublicBaseURL = strings.TrimRight(strings.TrimSpace(c.Storage.PublicBaseURL), "/")
	c.Questions.DefaultLocale = strings.TrimSpace(c.Questions.DefaultLocale)
}
