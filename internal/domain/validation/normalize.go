package validation

import "strings"

// NormalizeName capitalizes each word and collapses repeated whitespace.
// Short connectives common in Brazilian names stay lowercase.
func NormalizeName(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	for i, part := range parts {
		lower := strings.ToLower(part)
		if i > 0 && isNameConnective(lower) {
			parts[i] = lower
			continue
		}
		runes := []rune(lower)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

// NameKey is the whitespace-collapsed, case-insensitive form used for
// duplicate detection across differently formatted submissions.
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func isNameConnective(w string) bool {
	switch w {
	case "da", "de", "do", "das", "dos", "e":
		return true
	}
	return false
}
