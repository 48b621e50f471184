package uom

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperCaser = cases.Upper(language.Und)

// NormalizeCode lleva un código de unidad a su forma canónica: sin espacios en
// los extremos y en mayúsculas (plegado Unicode, no solo ASCII). Todo lookup
// contra el catálogo y los overrides pasa por aquí.
func NormalizeCode(code string) string {
	return upperCaser.String(strings.TrimSpace(code))
}
