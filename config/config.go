// Package config wraps viper with the key/value surface the rest of the
// program uses: command-line flags, SILKWORM_ environment variables, and an
// optional config file, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ConfigDebug           = "debug"
	ConfigTUI             = "tui"
	ConfigSeed            = "seed"
	ConfigDefaultLexicon  = "default-lexicon"
	ConfigDefaultLanguage = "default-language"
	ConfigWordListPath    = "word-list-path"
	ConfigLexiconPath     = "lexicon-path"
	ConfigDictionaryURL   = "dictionary-url"
	ConfigMinWordLength   = "min-word-length"
	ConfigSessionLog      = "session-log"
)

type Config struct {
	v *viper.Viper

	configFile string
	args       []string
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "silkworm")
}

// Load initializes the config from defaults, an optional config file, the
// environment, and finally the passed-in command-line args, which win.
// Args are accepted as -key value or -key=value pairs.
func (c *Config) Load(args []string) error {
	c.v = viper.New()

	c.v.SetDefault(ConfigDebug, false)
	c.v.SetDefault(ConfigTUI, false)
	c.v.SetDefault(ConfigSeed, "")
	c.v.SetDefault(ConfigDefaultLexicon, "")
	c.v.SetDefault(ConfigDefaultLanguage, "en")
	c.v.SetDefault(ConfigWordListPath, "./data/words.txt")
	c.v.SetDefault(ConfigLexiconPath, "./data/lexica")
	c.v.SetDefault(ConfigDictionaryURL, "")
	c.v.SetDefault(ConfigMinWordLength, 0)
	c.v.SetDefault(ConfigSessionLog, "")

	c.v.SetEnvPrefix("SILKWORM")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.v.SetConfigName("config")
	c.v.SetConfigType("yaml")
	if dir := defaultConfigDir(); dir != "" {
		c.v.AddConfigPath(dir)
		c.configFile = filepath.Join(dir, "config.yaml")
	}
	if err := c.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return c.parseArgs(args)
}

func (c *Config) parseArgs(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			// Parsing stops at the first non-flag token; the remainder
			// is available to the caller as Args (a one-shot command).
			c.args = args[i:]
			return nil
		}
		key := strings.TrimLeft(arg, "-")
		if idx := strings.Index(key, "="); idx != -1 {
			c.v.Set(key[:idx], key[idx+1:])
			continue
		}
		if boolFlags[key] {
			c.v.Set(key, true)
			continue
		}
		if i+1 >= len(args) {
			return fmt.Errorf("flag -%v needs a value after it", key)
		}
		c.v.Set(key, args[i+1])
		i++
	}
	return nil
}

// boolFlags are switches that never consume a following value.
var boolFlags = map[string]bool{
	ConfigDebug: true,
	ConfigTUI:   true,
}

// Args returns the non-flag arguments left over after Load.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) AllSettings() map[string]interface{} {
	return c.v.AllSettings()
}

// SanitizedSettings returns the settings map suitable for logging. Nothing
// here is secret today, but path keys are cleaned for readability.
func (c *Config) SanitizedSettings() map[string]interface{} {
	settings := c.v.AllSettings()
	for _, key := range []string{ConfigWordListPath, ConfigLexiconPath} {
		if v, ok := settings[key].(string); ok {
			settings[key] = filepath.Clean(v)
		}
	}
	return settings
}

// Write saves the current settings to the config file, creating the config
// directory if needed.
func (c *Config) Write() error {
	if c.configFile == "" {
		return fmt.Errorf("no config directory available")
	}
	if err := os.MkdirAll(filepath.Dir(c.configFile), 0o755); err != nil {
		return err
	}
	return c.v.WriteConfigAs(c.configFile)
}

// AdjustRelativePaths turns relative data paths into paths anchored at the
// executable's directory, so the program can be started from anywhere.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{ConfigWordListPath, ConfigLexiconPath} {
		p := c.v.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		adjusted := filepath.Join(basepath, p)
		log.Debug().Str(key, adjusted).Msg("adjusted path")
		c.v.Set(key, adjusted)
	}
}
