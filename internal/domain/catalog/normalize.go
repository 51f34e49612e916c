// Package catalog contém serviços de domínio do catálogo.
package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer remove diacríticos: decompõe (NFD), descarta marcas de acentuação
// e recompõe (NFC). "Caneca Térmica" e "caneca termica" casam na busca.
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devolve o termo em minúsculas e sem acentos, para busca
// insensível a caixa e acentuação no catálogo.
func Normalize(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Matches indica se o nome do produto contém o termo buscado, ignorando
// caixa e acentos.
func Matches(name, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(Normalize(name), Normalize(term))
}
