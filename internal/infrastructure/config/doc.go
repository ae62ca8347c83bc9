// Package config loads and validates taskgate configuration.
//
// Configuration is layered: hardcoded defaults, then values from a YAML
// file, then environment variable overrides (TASKGATE_SECTION_KEY).
// The JWT signing secret is mandatory and must be at least 32 characters;
// the server refuses to start without it rather than signing tokens with
// a guessable key.
package config
