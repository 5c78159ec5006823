package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPlate   = errors.New("invalid plate format")
	ErrInvalidLicense = errors.New("invalid license format")
)

// Accepted regional plate shapes. Taxi fleets still carry legacy plates
// (ABC-1234), optionally with a category suffix (ABC-1234-T), alongside
// Mercosul plates (ABC1D23). Some municipal registries record only the
// numeric permit, hence the digits-only fallback.
var platePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{3}-?\d{4}(-?[A-Z])?$`),
	regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`),
	regexp.MustCompile(`^\d{4,8}$`),
}

// CNH and municipal taxi-license numbers vary widely between issuers, so
// the gate is deliberately permissive: alphanumeric with common separators.
var licensePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{5,15}$`),
	regexp.MustCompile(`^[A-Z]{0,3}[-./]?\d{3,12}[-./]?\d{0,4}$`),
	regexp.MustCompile(`^[A-Z0-9][A-Z0-9./-]{2,18}[A-Z0-9]$`),
}

// ValidatePlate checks a vehicle plate against the accepted shapes.
// Plates are optional at registration; callers skip empty values.
func ValidatePlate(plate string) error {
	p := NormalizePlate(plate)
	for _, re := range platePatterns {
		if re.MatchString(p) {
			return nil
		}
	}
	return ErrInvalidPlate
}

// ValidateLicense checks a driver/taxi license number.
func ValidateLicense(license string) error {
	l := NormalizePlate(license)
	for _, re := range licensePatterns {
		if re.MatchString(l) {
			return nil
		}
	}
	return ErrInvalidLicense
}

// NormalizePlate uppercases and trims; the canonical stored form.
func NormalizePlate(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
