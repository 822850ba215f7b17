package config

import (
	"fmt"
	"strings"
)

var validOutputFormats = []string{"json", "yaml", "table"}

func ValidateOutputFormat(format string) error {
	for _, valid := range validOutputFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be one of: %s)", format, strings.Join(validOutputFormats, ", "))
}
