package ticktick

import (
	"strings"
	"unicode"
)

// MergeTags appends each extra tag to existing unless a case-insensitive match is already present,
// preserving insertion order and the casing of the first occurrence. Applying the same extras twice is a
// no-op.
func MergeTags(existing, extras []string) []string {
	merged := existing
	for _, tag := range extras {
		seen := false
		for _, have := range merged {
			if strings.EqualFold(have, tag) {
				seen = true
				break
			}
		}
		if !seen {
			merged = append(merged, tag)
		}
	}
	return merged
}

// HasAllTags reports whether every required tag has a case-insensitive match among the task's tags. A
// task without tags never matches.
func HasAllTags(t *Task, required []string) bool {
	if len(t.Tags) == 0 {
		return false
	}
	for _, want := range required {
		found := false
		for _, have := range t.Tags {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// NormalizeListName reduces a list name for fuzzy matching: lowercased, symbol and emoji runes dropped,
// whitespace runs collapsed to single spaces, ends trimmed. "🚀Personal" and "personal" compare equal.
func NormalizeListName(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
