// Package validation holds value checks shared by config and import paths.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// PaletteColor names one palette entry for error messages.
type PaletteColor struct {
	Field string
	Value string
}

// ValidatePaletteHex returns one message per color that is not #RRGGBB.
func ValidatePaletteHex(prefix string, colors ...PaletteColor) []string {
	var errs []string
	for _, c := range colors {
		if !IsHexColor(c.Value) {
			errs = append(errs, prefix+"."+c.Field+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
