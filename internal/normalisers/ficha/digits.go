package ficha

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// foldDigits maps superscript and subscript digits to ASCII digits and
// leaves every other rune untouched.
var foldDigits = runes.Map(func(r rune) rune {
	switch {
	case r == '⁰':
		return '0'
	case r == '¹':
		return '1'
	case r == '²':
		return '2'
	case r == '³':
		return '3'
	case r >= '⁴' && r <= '⁹':
		return '4' + (r - '⁴')
	case r >= '₀' && r <= '₉':
		return '0' + (r - '₀')
	default:
		return r
	}
})

// normaliseDigits replaces ⁰-⁹ and ₀-₉ with 0-9.
func normaliseDigits(s string) string {
	out, _, err := transform.String(foldDigits, s)
	if err != nil {
		return s
	}
	return out
}
