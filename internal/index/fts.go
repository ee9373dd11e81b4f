package index

import "strings"

// EscapeFTSQuery escapes a raw user search string for FTS5 MATCH. Double
// quotes are doubled; if the string contains a space and none of the
// operator tokens AND/OR/NOT/NEAR/*, it is phrase-wrapped so FTS5 treats it
// as a literal substring match rather than parsing it as boolean syntax.
func EscapeFTSQuery(query string) string {
	escaped := strings.ReplaceAll(query, `"`, `""`)
	if strings.Contains(query, " ") && !containsAny(query, "AND", "OR", "NOT", "NEAR", "*") {
		return `"` + escaped + `"`
	}
	return escaped
}

func containsAny(s string, tokens ...string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
