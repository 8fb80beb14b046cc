package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/klondike/game"
	"gopkg.in/yaml.v3"
)

// Config is read from the environment
type Config struct {
	Port        int    `env:"KLONDIKE_PORT,default=8000"`
	StaticDir   string `env:"KLONDIKE_STATIC_DIR,default=./build"`
	LayoutFile  string `env:"KLONDIKE_LAYOUT_FILE"`
	StrictSuits bool   `env:"KLONDIKE_STRICT_SUITS,default=false"`
	// Seed fixes the shuffle so every game deals the same way. Zero seeds from the clock.
	Seed int64 `env:"KLONDIKE_SEED"`
}

// Load decodes the configuration from the environment
func Load() (Config, error) {
	var cfg Config
	err := envdecode.StrictDecode(&cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadLayout reads a YAML layout file over the default layout.
// An empty path gives the default layout.
func LoadLayout(path string) (game.Layout, error) {
	layout := game.DefaultLayout()
	if path == "" {
		return layout, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return game.Layout{}, fmt.Errorf("layout: %w", err)
	}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return game.Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	if err := layout.Validate(); err != nil {
		return game.Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return layout, nil
}

// GameOptions builds the options for one new game. Each call gets its own
// random source, so the result may be handed to another goroutine.
func (c Config) GameOptions(layout game.Layout) game.Options {
	opts := game.Options{
		Layout: &layout,
		Rules:  game.Rules{StrictSuits: c.StrictSuits},
	}
	if c.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(c.Seed))
	}
	return opts
}
