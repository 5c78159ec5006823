package validation

import (
	"errors"
	"regexp"
)

var ErrInvalidCPF = errors.New("invalid cpf")

var nonDigits = regexp.MustCompile(`[^\d]`)

// CleanDigits strips every non-digit character (CPF/phone canonical form).
func CleanDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidateCPF checks the Brazilian individual taxpayer number: 11 digits,
// not all identical, and both mod-11 check digits correct.
//
// Check digit rule: weighted sum of the preceding digits with descending
// weights (10..2 for the first digit, 11..2 for the second); digit = 0 when
// sum%11 < 2, else 11 - sum%11.
func ValidateCPF(cpf string) error {
	digits := CleanDigits(cpf)
	if len(digits) != 11 {
		return ErrInvalidCPF
	}

	// Sequences like "00000000000" pass the checksum but are not valid CPFs.
	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return ErrInvalidCPF
	}

	if cpfCheckDigit(digits, 9) != int(digits[9]-'0') {
		return ErrInvalidCPF
	}
	if cpfCheckDigit(digits, 10) != int(digits[10]-'0') {
		return ErrInvalidCPF
	}
	return nil
}

func cpfCheckDigit(digits string, length int) int {
	sum := 0
	for i := 0; i < length; i++ {
		sum += int(digits[i]-'0') * (length + 1 - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
