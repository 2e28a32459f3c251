// Package config loads and validates shelve's TOML configuration.
//
// Loading layers repository defaults, the config file (when present), and
// environment overrides, then normalizes paths and validates the result so
// the rest of the program can trust every field.
package config
