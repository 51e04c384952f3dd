// Package config loads cryptokit settings from defaults, an optional YAML
// file and CRYPTOKIT_* environment variables.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-crypto-utils/hashing"
)

// Format is the text encoding used for binary command output.
type Format string

const (
	// FormatHex writes lowercase hexadecimal.
	FormatHex Format = "hex"
	// FormatBase64 writes standard padded base64.
	FormatBase64 Format = "base64"
)

// Formats returns the accepted output formats.
func Formats() []Format { return []Format{FormatHex, FormatBase64} }

// Valid reports whether f is one of [Formats].
func (f Format) Valid() bool { return slices.Contains(Formats(), f) }

// UnmarshalText normalises case and rejects unknown formats.
func (f *Format) UnmarshalText(text []byte) error {
	v := Format(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("%w: output format %q must be one of %v", ErrInvalidConfig, string(text), Formats())
	}
	*f = v
	return nil
}

// Config is the effective cryptokit configuration.
type Config struct {
	Output  OutputConfig           `mapstructure:"output" yaml:"output"`
	Log     LogConfig              `mapstructure:"log" yaml:"log"`
	Hashing hashing.ManagerOptions `mapstructure:"hashing" yaml:"hashing"`
	KDF     KDFConfig              `mapstructure:"kdf" yaml:"kdf"`
}

// OutputConfig controls how binary results are printed.
type OutputConfig struct {
	Format Format `mapstructure:"format" yaml:"format"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
}

// KDFConfig holds the default cost parameters of the kdf command.
type KDFConfig struct {
	Scrypt hashing.ScryptParams `mapstructure:"scrypt" yaml:"scrypt"`
	Argon2 hashing.Argon2Params `mapstructure:"argon2" yaml:"argon2"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output:  OutputConfig{Format: FormatHex},
		Log:     LogConfig{Level: zerolog.InfoLevel.String()},
		Hashing: hashing.DefaultManagerOptions(),
		KDF: KDFConfig{
			Scrypt: hashing.ScryptParams{
				N:      hashing.DefaultScryptN,
				R:      hashing.DefaultScryptR,
				P:      hashing.DefaultScryptP,
				KeyLen: hashing.DefaultScryptKeyLen,
				MaxMem: hashing.DefaultScryptMaxMem,
			},
			Argon2: hashing.Argon2Params{
				Time:    hashing.DefaultArgon2Time,
				Memory:  hashing.DefaultArgon2Memory,
				Threads: hashing.DefaultArgon2Threads,
				KeyLen:  hashing.DefaultArgon2KeyLen,
				MaxMem:  hashing.DefaultArgon2MaxMem,
			},
		},
	}
}

// Validate checks cfg for values no command could use.  KDF costs are left
// to the key-derivation functions, which report them as failures.
func Validate(cfg *Config) error {
	if !cfg.Output.Format.Valid() {
		return fmt.Errorf("%w: output format %q must be one of %v", ErrInvalidConfig, cfg.Output.Format, Formats())
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}
	if _, err := hashing.NewManagerWithOptions(cfg.Hashing); err != nil {
		return fmt.Errorf("%w: hashing: %v", ErrInvalidConfig, err)
	}
	return nil
}
