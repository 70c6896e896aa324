package query

import "strings"

// normalizeText lowercases text and replaces punctuation with spaces so
// multi-word vocabulary entries can be matched on word boundaries.
func normalizeText(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(".,!?;:'\"-()[]{}", r) {
			return ' '
		}
		return r
	}, strings.ToLower(text))
	return " " + strings.Join(strings.Fields(mapped), " ") + " "
}

// containsPhrase reports whether the normalized text contains the phrase on
// word boundaries.
func containsPhrase(normalized, phrase string) bool {
	return strings.Contains(normalized, " "+phrase+" ")
}
