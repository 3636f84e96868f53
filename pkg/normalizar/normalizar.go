package normalizar

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var sinDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SinTildes elimina diacríticos de un texto (café -> cafe, Ñ -> N).
// Si la transformación falla devuelve el texto original.
func SinTildes(s string) string {
	out, _, err := transform.String(sinDiacriticos, s)
	if err != nil {
		return s
	}
	return out
}

// Codigo normaliza un código de artículo: sin tildes, mayúsculas y espacios
// internos colapsados a guiones. "fert nítrico " -> "FERT-NITRICO".
func Codigo(s string) string {
	s = strings.TrimSpace(SinTildes(s))
	s = strings.ToUpper(s)
	return strings.Join(strings.Fields(s), "-")
}
