// Package normalize prepara términos de búsqueda para comparaciones
// insensibles a acentos: "José Pérez" y "jose perez" deben calzar igual.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // elimina las marcas diacríticas
	norm.NFC,
)

// Search devuelve el término en minúsculas, sin acentos y sin espacios
// sobrantes, listo para una comparación ILIKE.
func Search(term string) string {
	out, _, err := transform.String(stripAccents, term)
	if err != nil {
		out = term
	}
	return strings.ToLower(strings.TrimSpace(out))
}
