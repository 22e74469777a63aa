// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config.yaml. It provides
// type-safe access to server, gameplay and catalog settings while keeping
// configuration details separate from game logic.
package config
