package config

import "errors"

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig is returned when the file cannot be decoded or holds
	// an unsupported value.
	ErrInvalidConfig = errors.New("invalid config")
)
