package metadecoders

import (
	"path/filepath"
	"strings"
)

type Format string

const (
	// TOML is the TOML meta data format.
	TOML Format = "toml"
	// YAML is the YAML meta data format.
	YAML Format = "yaml"
)

// FormatFromString turns formatStr, typically a file extension without any ".",
// into a Format. It returns an empty string for unknown formats.
func FormatFromString(formatStr string) Format {
	formatStr = strings.ToLower(formatStr)
	if strings.Contains(formatStr, ".") {
		// Assume a filename.
		formatStr = strings.TrimPrefix(filepath.Ext(formatStr), ".")
	}
	switch formatStr {
	case "yaml", "yml":
		return YAML
	case "toml":
		return TOML
	}

	return ""
}

// FormatFromFrontMatterType returns the Format for the given front matter
// fence delimiter rune, i.e. the first byte of a "---" or "+++" block.
func FormatFromFrontMatterType(delim rune) Format {
	switch delim {
	case '-':
		return YAML
	case '+':
		return TOML
	}
	return ""
}
