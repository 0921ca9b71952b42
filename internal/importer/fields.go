package importer

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ResolveField finds the best value for a logical field in a row of
// arbitrary column labels. It tries, in order: an exact key match for each
// alias, a key containing an alias as a substring, and a key containing any
// whitespace-separated alias token. Empty cell values never match, so a
// blank "codigo" column does not shadow a populated "cod. producto" one.
//
// Row keys are scanned in sorted order on the inexact passes, so resolution
// is deterministic regardless of map construction order. A nil or empty row
// resolves to "".
//
// As a domain fallback, brand-style alias sets that stay unresolved are
// derived from the first word of the row's description.
func ResolveField(row map[string]string, aliases []string) string {
	if v := resolveColumn(row, aliases); v != "" {
		return v
	}

	if isBrandAliasSet(aliases) {
		if desc := resolveColumn(row, descripcionAliases); desc != "" {
			if brand := brandFromDescription(desc); brand != "" {
				return brand
			}
		}
	}

	return ""
}

// resolveColumn runs the three matching passes without the brand fallback,
// so callers can tell a value read from the sheet apart from a derived one.
func resolveColumn(row map[string]string, aliases []string) string {
	if len(row) == 0 {
		return ""
	}

	lowered := make(map[string]string, len(row))
	for k, v := range row {
		lowered[strings.ToLower(strings.TrimSpace(k))] = v
	}
	keys := make([]string, 0, len(lowered))
	for k := range lowered {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, alias := range aliases {
		a := strings.ToLower(strings.TrimSpace(alias))
		if v, ok := lowered[a]; ok && v != "" {
			return v
		}
	}

	for _, alias := range aliases {
		a := strings.ToLower(strings.TrimSpace(alias))
		for _, k := range keys {
			if strings.Contains(k, a) && lowered[k] != "" {
				return lowered[k]
			}
		}
	}

	for _, k := range keys {
		for _, alias := range aliases {
			for _, word := range strings.Fields(strings.ToLower(alias)) {
				if strings.Contains(k, word) && lowered[k] != "" {
					return lowered[k]
				}
			}
		}
	}

	return ""
}

func isBrandAliasSet(aliases []string) bool {
	for _, a := range aliases {
		if strings.Contains(strings.ToLower(a), "marca") {
			return true
		}
	}
	return false
}

// brandFromDescription guesses a brand from the first word of a product
// description: brands in this catalog are either written in full uppercase
// (ROCHE, STAGO) or are short codes. Returns "" when the first word does not
// look like a brand.
func brandFromDescription(desc string) string {
	words := strings.Fields(desc)
	if len(words) == 0 {
		return ""
	}
	first := words[0]
	if first == strings.ToUpper(first) || len([]rune(first)) < 6 {
		return first
	}
	return ""
}

var diacriticsStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stripDiacritics removes combining accent marks ("descripción" →
// "descripcion") so header names compare stably across locales.
func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticsStripper, s)
	if err != nil {
		return s
	}
	return out
}
