// Package constants centralizes configuration defaults shared across the CLI.
//
// File permissions, the default entry database location and report layout
// widths live here so cmd/ and internal/ reference one value without
// introducing import cycles.
package constants
