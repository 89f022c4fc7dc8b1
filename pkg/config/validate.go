package config

import (
	"strings"

	"mdtoc/pkg/format"
	"mdtoc/pkg/utils"
)

// Validate checks Config fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults.
func (c *Config) Validate() (warnings []string, err error) {
	// Format
	if _, perr := format.Parse(c.Format); perr != nil {
		return warnings, utils.WrapErrorf(utils.ErrConfigValidation, "%v", perr)
	}

	// CustomBullet overrides Format when both are set
	if c.CustomBullet != "" && c.Format != "" {
		warnings = append(warnings, "custom_bullet is set, ignoring format")
		c.Format = ""
	}
	if strings.ContainsAny(c.CustomBullet, "\r\n") {
		return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
			"custom_bullet must not contain line endings")
	}

	// Markers must sit alone on a line, so embedded line endings can never match
	if strings.ContainsAny(c.BeginMarker, "\r\n") {
		return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
			"begin_marker must not contain line endings")
	}
	if strings.ContainsAny(c.EndMarker, "\r\n") {
		return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
			"end_marker must not contain line endings")
	}
	if c.BeginMarker != "" && c.BeginMarker == c.EndMarker {
		return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
			"begin_marker and end_marker must differ")
	}

	return warnings, nil
}

// Style resolves the configured formatting to a format.Style. Call Validate
// first; an unknown format name falls back to the default style here.
func (c *Config) Style() format.Style {
	if c.CustomBullet != "" {
		return format.Custom(c.CustomBullet)
	}
	s, err := format.Parse(c.Format)
	if err != nil {
		return format.Alternating
	}
	return s
}
