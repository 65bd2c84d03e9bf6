// Package config handles loading of clg configuration.
//
// Configuration is read from ~/.clg.toml. The file is optional: a missing
// file yields the defaults, and a file that cannot be read or parsed is
// reported as a warning while the defaults are still used.
//
// # Configuration Sources (highest priority first)
//
//   - CLG_ROOT env var: root directory for checkouts
//   - Config file settings
//   - Default values (root = ~/.clg)
//
// # Example
//
//	root = "~/src"
//
// # Path Validation
//
// The root must be absolute or start with ~ (no relative paths like "."
// or "..") so that it does not depend on the working directory.
package config
