// Package config loads runtime settings for the profile editor CLI.
//
// Values are resolved in three layers, later layers overriding earlier ones:
// built-in defaults, a JSON file (selected with -c/-config), and command-line
// flags. Each layer parses only the flags it owns (see internal/flagx), so
// the layers do not interfere with each other.
package config
