package output

import (
	"fmt"
	"strings"
)

// OutputFormat specifies the output format of listing commands.
type OutputFormat string

const (
	// FormatText outputs grouped "name - location" lines.
	FormatText OutputFormat = "text"

	// FormatTable outputs a bordered table.
	FormatTable OutputFormat = "table"

	// FormatYAML outputs in YAML format.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// Empty input yields FormatText and "yml" is accepted for YAML.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(s))
	switch f {
	case "":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	}
	if !f.IsValid() {
		return "", fmt.Errorf("unknown output format %q; valid formats: %s", s, strings.Join(ValidFormats(), ", "))
	}
	return f, nil
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"text", "table", "yaml", "json"}
}
