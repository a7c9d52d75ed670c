// Package config loads logdeck's TOML configuration.
//
// The file lives at ~/.config/logdeck/config.toml by default and is
// optional: a missing file yields a usable default configuration, and
// explicit values are validated only loosely (non-positive numbers
// fall back to defaults, blank paths are dropped). Paths support ~
// expansion.
package config
