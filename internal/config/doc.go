// Package config loads and validates application configuration from
// defaults, an optional YAML file, and TODO_-prefixed environment
// variables, in increasing order of precedence.
package config
