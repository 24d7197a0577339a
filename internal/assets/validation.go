package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could escape the templates
// directory or change the file extension: empty names, separators, dots
// and NUL bytes.
func ValidateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
