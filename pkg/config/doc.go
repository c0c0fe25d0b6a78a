// Package config handles configuration management for braces.
// It layers embedded defaults, a user TOML or YAML file, BRACES_ environment
// variables and command-line flags, lowest precedence first.
package config
