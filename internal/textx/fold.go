// Package textx holds the text normalisation shared by searches.
package textx

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns s in NFC form with Unicode case folding applied, so that
// "GARCÍA", "García" and a decomposed "garcía" all compare equal.
// Accents are kept: "garcia" does not match "garcía".
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}
