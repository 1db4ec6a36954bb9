// Package config loads and validates glint.json.
package config
