// Package config resolves mathflow settings from flags, environment
// variables and an optional config file.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/mathflow/internal/store"
)

// EnvPrefix prefixes every environment variable, e.g. MATHFLOW_LOG_LEVEL.
const EnvPrefix = "MATHFLOW"

// Setting keys. Each doubles as the persistent flag name.
const (
	KeyDB        = "db"
	KeyEphemeral = "ephemeral"
	KeyLogLevel  = "log-level"
	KeyTopics    = "topics"
	KeySeed      = "seed"
)

// Config is the resolved runtime configuration.
type Config struct {
	// DBPath is the SQLite file. Empty means the default location.
	DBPath string
	// Ephemeral keeps all state in memory for the life of the process.
	Ephemeral bool
	// LogLevel filters diagnostic output on stderr.
	LogLevel slog.Level
	// TopicsFile is an optional JSON file of extra topics.
	TopicsFile string
	// Seed fixes the question order. Zero seeds from the clock.
	Seed int64
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDB, "")
	v.SetDefault(KeyEphemeral, false)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyTopics, "")
	v.SetDefault(KeySeed, 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every setting that has a matching flag in fs. A flag set
// on the command line wins over environment and file values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyDB, KeyEphemeral, KeyLogLevel, KeyTopics, KeySeed} {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", key)
		}
	}
	return nil
}

// Load reads file, if given, and resolves the configuration. fs is the flag
// set passed to BindFlags, or nil when no flags are bound.
func Load(v *viper.Viper, fs *pflag.FlagSet, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", KeyLogLevel)
	}

	cfg := &Config{
		DBPath:     v.GetString(KeyDB),
		Ephemeral:  v.GetBool(KeyEphemeral),
		LogLevel:   level,
		TopicsFile: v.GetString(KeyTopics),
		Seed:       v.GetInt64(KeySeed),
	}

	// --ephemeral with MATHFLOW_DB exported, or --db with ephemeral in the
	// config file, is not a conflict: the closer source wins.
	if cfg.Ephemeral && cfg.DBPath != "" {
		ephemeral, db := sourceOf(v, fs, KeyEphemeral), sourceOf(v, fs, KeyDB)
		switch {
		case ephemeral > db:
			cfg.DBPath = ""
		case db > ephemeral:
			cfg.Ephemeral = false
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// source ranks where a setting came from, in viper's precedence order.
type source int

const (
	fromDefault source = iota
	fromFile
	fromEnv
	fromFlag
)

func sourceOf(v *viper.Viper, fs *pflag.FlagSet, key string) source {
	if fs != nil {
		if f := fs.Lookup(key); f != nil && f.Changed {
			return fromFlag
		}
	}
	if _, ok := os.LookupEnv(envName(key)); ok {
		return fromEnv
	}
	if v.InConfig(key) {
		return fromFile
	}
	return fromDefault
}

// envName maps a setting key to its environment variable, e.g. log-level to
// MATHFLOW_LOG_LEVEL.
func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// Validate rejects contradictory settings.
func (c *Config) Validate() error {
	if c.Ephemeral && c.DBPath != "" {
		return errors.Errorf("%s and %s are mutually exclusive", KeyEphemeral, KeyDB)
	}
	return nil
}

// ResolveDBPath returns the database file to open, creating its directory.
// The configured path wins over MATHFLOW_DB and the XDG default.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath()
}

// NewLogger builds the text logger used for diagnostics.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
