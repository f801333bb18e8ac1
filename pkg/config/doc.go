// Package config handles configuration management for dotsetup.
//
// Configuration is layered with koanf, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/dotsetup/config.toml or --config
//  3. DOTSETUP_* environment variables, e.g. DOTSETUP_OUTPUT_FORMAT=json
//     sets output.format
package config
