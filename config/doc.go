// Package config loads and validates the application configuration from a
// YAML file.
package config
