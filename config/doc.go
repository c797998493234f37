// Package config loads and validates experiment settings.
//
// Files are YAML (.yaml, .yml) or TOML (.toml) and are overlaid on
// Default(), which reproduces the reference experiment on the Kdl
// topology. Struct tags are checked with go-playground/validator; rules
// spanning several fields (one topology source, whole random percentages,
// a known flow algorithm) are checked by Validate.
package config
