package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidName = errors.New("invalid name")

// Letters (including accented), spaces, hyphens and apostrophes only.
var namePattern = regexp.MustCompile(`^[\p{L}' -]+$`)

// Placeholder tokens people type to get past required-field checks.
var namePlaceholders = map[string]struct{}{
	"teste":     {},
	"test":      {},
	"nome":      {},
	"sobrenome": {},
	"fulano":    {},
	"ciclano":   {},
	"beltrano":  {},
	"asdf":      {},
	"qwerty":    {},
	"abcd":      {},
	"xxxx":      {},
}

// ValidateFullName enforces the registration name rules. The returned error
// wraps ErrInvalidName and names the specific violated rule.
func ValidateFullName(name string) error {
	trimmed := strings.TrimSpace(name)

	if n := len([]rune(trimmed)); n < 2 || n > 60 {
		return fmt.Errorf("%w: must have between 2 and 60 characters", ErrInvalidName)
	}
	if !namePattern.MatchString(trimmed) {
		return fmt.Errorf("%w: only letters, spaces and hyphens are allowed", ErrInvalidName)
	}

	parts := strings.Fields(trimmed)
	if len(parts) < 2 {
		return fmt.Errorf("%w: full name requires at least two parts", ErrInvalidName)
	}
	for _, part := range parts {
		if len([]rune(part)) < 2 {
			return fmt.Errorf("%w: each name part needs at least 2 characters", ErrInvalidName)
		}
		if _, ok := namePlaceholders[strings.ToLower(part)]; ok {
			return fmt.Errorf("%w: %q looks like a placeholder", ErrInvalidName, part)
		}
	}

	if hasRepeatedRun(trimmed, 4) {
		return fmt.Errorf("%w: repeated character sequence", ErrInvalidName)
	}
	return nil
}

func hasRepeatedRun(s string, limit int) bool {
	var prev rune
	run := 0
	for _, r := range strings.ToLower(s) {
		if r == prev {
			run++
			if run >= limit {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
