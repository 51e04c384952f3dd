package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CRYPTOKIT_OUTPUT_FORMAT.
const EnvPrefix = "CRYPTOKIT"

// GlobalConfigDir returns ~/.cryptokit.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cryptokit"), nil
}

// newViperInstance creates a Viper instance with defaults and the
// CRYPTOKIT_ environment mapping ("hashing.argon2.memory" is read from
// CRYPTOKIT_HASHING_ARGON2_MEMORY).
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so environment variables are seen by
// Unmarshal even when no file mentions them.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("output.format", string(d.Output.Format))
	v.SetDefault("log.level", d.Log.Level)

	v.SetDefault("hashing.default", string(d.Hashing.Default))
	v.SetDefault("hashing.bcrypt.cost", d.Hashing.Bcrypt.Cost)
	v.SetDefault("hashing.argon2.memory", d.Hashing.Argon2.Memory)
	v.SetDefault("hashing.argon2.time", d.Hashing.Argon2.Time)
	v.SetDefault("hashing.argon2.threads", d.Hashing.Argon2.Threads)
	v.SetDefault("hashing.argon2.key_len", d.Hashing.Argon2.KeyLen)
	v.SetDefault("hashing.argon2.salt_len", d.Hashing.Argon2.SaltLen)
	v.SetDefault("hashing.scrypt.n", d.Hashing.Scrypt.N)
	v.SetDefault("hashing.scrypt.r", d.Hashing.Scrypt.R)
	v.SetDefault("hashing.scrypt.p", d.Hashing.Scrypt.P)
	v.SetDefault("hashing.scrypt.key_len", d.Hashing.Scrypt.KeyLen)
	v.SetDefault("hashing.scrypt.salt_len", d.Hashing.Scrypt.SaltLen)

	v.SetDefault("kdf.scrypt.n", d.KDF.Scrypt.N)
	v.SetDefault("kdf.scrypt.r", d.KDF.Scrypt.R)
	v.SetDefault("kdf.scrypt.p", d.KDF.Scrypt.P)
	v.SetDefault("kdf.scrypt.key_len", d.KDF.Scrypt.KeyLen)
	v.SetDefault("kdf.scrypt.max_mem", d.KDF.Scrypt.MaxMem)
	v.SetDefault("kdf.argon2.time", d.KDF.Argon2.Time)
	v.SetDefault("kdf.argon2.memory", d.KDF.Argon2.Memory)
	v.SetDefault("kdf.argon2.threads", d.KDF.Argon2.Threads)
	v.SetDefault("kdf.argon2.key_len", d.KDF.Argon2.KeyLen)
	v.SetDefault("kdf.argon2.max_mem", d.KDF.Argon2.MaxMem)
}

// viperDecoderOption keeps viper's weak typing for environment strings and
// routes text values through encoding.TextUnmarshaler (see [Format]).
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)
}

// Load reads configuration with this precedence (highest first):
//  1. Environment variables (CRYPTOKIT_* prefix)
//  2. The file at path, or ~/.cryptokit/config.yaml when path is empty
//  3. Built-in defaults
//
// A missing default file is not an error; a missing explicit path is.
func Load(ctx context.Context, path string) (*Config, error) {
	v := newViperInstance()

	if path == "" {
		path = globalConfigPathIfExists()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "config").
		Str("file", v.ConfigFileUsed()).
		Str("output.format", string(cfg.Output.Format)).
		Str("hashing.default", string(cfg.Hashing.Default)).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides.
// Only non-zero override values are applied.
func LoadWithOverrides(ctx context.Context, path string, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if overrides != nil {
		applyOverrides(cfg, overrides)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("after overrides: %w", err)
	}
	return cfg, nil
}

func applyOverrides(cfg, o *Config) {
	if o.Output.Format != "" {
		cfg.Output.Format = o.Output.Format
	}
	if o.Log.Level != "" {
		cfg.Log.Level = o.Log.Level
	}
	if o.Hashing.Default != "" {
		cfg.Hashing.Default = o.Hashing.Default
	}
}

func globalConfigPathIfExists() string {
	dir, err := GlobalConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func isConfigNotFoundError(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}
