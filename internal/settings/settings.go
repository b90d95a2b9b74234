// Package settings resolves the process-wide settings for tau from the
// environment using Viper.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the values every tau invocation needs before it touches
// the route store.
type Settings struct {
	ConfigDir string `mapstructure:"config_dir"`
	Home      string `mapstructure:"home"`
	LogLevel  string `mapstructure:"log_level"`
	NoColor   bool   `mapstructure:"no_color"`
}

var keys = []string{"config_dir", "home", "log_level", "no_color"}

// Load reads settings with precedence TAU_* env vars > defaults.
func Load() (*Settings, error) {
	v := viper.New()

	v.SetDefault("config_dir", defaultConfigDir())
	v.SetDefault("home", defaultHome())
	v.SetDefault("log_level", "warn")
	v.SetDefault("no_color", false)

	v.SetEnvPrefix("TAU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k, "TAU_"+strings.ToUpper(k)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", k, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}
	if s.ConfigDir == "" {
		return nil, fmt.Errorf("settings: no config directory (set TAU_CONFIG_DIR)")
	}
	abs, err := filepath.Abs(s.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	s.ConfigDir = abs
	if s.Home != "" {
		s.Home = filepath.Clean(s.Home)
	}
	return &s, nil
}

// defaultConfigDir is <user config dir>/tau, or empty when the platform
// reports none.
func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tau")
}

// defaultHome is empty when the home directory cannot be determined; the
// locator reports that as its own error.
func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
