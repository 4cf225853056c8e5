package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"packlist/internal/form"
	"packlist/internal/model"
	"packlist/internal/store"

	"github.com/spf13/viper"
)

const envPrefix = "PACKLIST"

// Config holds application configuration.
type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	List  ListConfig  `mapstructure:"list"`
	Debug DebugConfig `mapstructure:"debug"`
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	// Theme is one of: auto|light|dark
	Theme string `mapstructure:"theme"`
	// Glyphs is one of: unicode|ascii
	Glyphs string `mapstructure:"glyphs"`
}

// ListConfig controls the list shown at startup.
type ListConfig struct {
	Sort  string     `mapstructure:"sort"`
	Seed  bool       `mapstructure:"seed"`
	Items []SeedItem `mapstructure:"items"`
}

type SeedItem struct {
	Quantity    int    `mapstructure:"quantity"`
	Description string `mapstructure:"description"`
	Packed      bool   `mapstructure:"packed"`
}

type DebugConfig struct {
	// Log is a file path for TUI debug logs. Empty disables logging.
	Log string `mapstructure:"log"`
}

// Load reads configuration from an optional toml file and env. Env var
// overrides use prefix PACKLIST_ (e.g. PACKLIST_UI_THEME).
//
// When path is empty, $PACKLIST_CONFIG and then ~/.config/packlist/config.toml
// are tried; a missing file is not an error. An explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.theme", "auto")
	v.SetDefault("ui.glyphs", "unicode")
	v.SetDefault("list.sort", "default")
	v.SetDefault("list.seed", true)
	v.SetDefault("debug.log", "")

	v.SetConfigType("toml")

	explicit := strings.TrimSpace(path)
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(envPrefix + "_CONFIG"))
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "packlist"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := c.SortMode(); err != nil {
		return Config{}, fmt.Errorf("list.sort: %w", err)
	}
	return c, nil
}

func (c Config) SortMode() (model.SortMode, error) {
	return model.ParseSortMode(c.List.Sort)
}

// StartupItems returns the list to open with. Configured items replace the
// demo seed; entries with a blank description are skipped.
func (c Config) StartupItems() []model.Item {
	if !c.List.Seed {
		return []model.Item{}
	}
	if len(c.List.Items) == 0 {
		return store.DefaultSeed()
	}
	out := make([]model.Item, 0, len(c.List.Items))
	for _, si := range c.List.Items {
		it, ok := form.BuildItem(strconv.Itoa(si.Quantity), si.Description)
		if !ok {
			continue
		}
		out = append(out, it.WithPacked(si.Packed))
	}
	return out
}
