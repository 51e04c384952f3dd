package config

import "errors"

var (
	// ErrInvalidConfig is returned when a loaded value fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrReadConfig is returned when an explicitly requested file cannot be read.
	ErrReadConfig = errors.New("config: cannot read configuration file")
)
