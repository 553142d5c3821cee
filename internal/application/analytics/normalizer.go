package analytics

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicaliza un nombre de producto a su clave de cruce:
// minúsculas, solo caracteres alfanuméricos, en el orden original.
// Descompone con NFD y descarta marcas diacríticas, de modo que
// "Café Móka" y "cafe moka" producen la misma clave.
//
// Es un cruce difuso best-effort, no una llave exacta: dos productos
// distintos pueden normalizar igual y la colisión se resuelve de forma
// arbitraria en el índice (gana el último indexado).
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range norm.NFD.String(name) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
