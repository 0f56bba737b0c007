package arena

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"iqarena/internal/catalog"
)

const (
	ModeCareer = "career"
	ModeFree   = "free"
)

// Config controls runtime behavior for the arena controller.
type Config struct {
	DataDir      string `yaml:"data_dir"`
	LogPath      string `yaml:"log_path"`
	Mode         string `yaml:"mode"`
	FreePlayTier string `yaml:"free_play_tier"`
}

func DefaultConfig() Config {
	return Config{
		Mode:         ModeCareer,
		FreePlayTier: "easy",
	}
}

func (c *Config) Validate() error {
	switch c.Mode {
	case "":
		c.Mode = ModeCareer
	case ModeCareer, ModeFree:
	default:
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	if c.FreePlayTier == "" {
		c.FreePlayTier = "easy"
	}
	if _, err := catalog.ParseTier(c.FreePlayTier); err != nil {
		return err
	}
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot resolve user home directory")
		}
		c.DataDir = filepath.Join(home, ".local", "share", "iqarena")
	}
	return nil
}

// LoadConfig overlays a YAML config file on the defaults. A missing
// file is not an error; the defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
