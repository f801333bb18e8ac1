// Package paths provides centralized path handling for dotsetup.
//
// It follows the XDG Base Directory specification for the tool's own files
// and expands the user-facing paths found in manifests.
//
// # Environment Variables
//
//   - DOTSETUP_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/dotsetup)
//   - DOTSETUP_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/dotsetup)
//   - DOTSETUP_DATA_DIR: Override XDG data directory (default: $XDG_DATA_HOME/dotsetup)
//
// # Layout
//
//   - Config: config.toml and the default manifest.toml
//   - State: dotsetup.log
//
// Manifest paths may start with ~ and reference environment variables;
// Expand resolves both.
package paths
