package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateFullName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		rule    string
	}{
		{name: "valid simple", input: "Maria Silva Costa", wantErr: false},
		{name: "valid accented", input: "José Antônio Gonçalves", wantErr: false},
		{name: "valid hyphenated", input: "Ana-Clara Souza", wantErr: false},
		{name: "valid with connective", input: "João da Silva", wantErr: false},
		{name: "single word", input: "Maria", wantErr: true, rule: "two parts"},
		{name: "short part", input: "Maria S", wantErr: true, rule: "at least 2 characters"},
		{name: "digits", input: "Maria 2Silva", wantErr: true, rule: "only letters"},
		{name: "placeholder", input: "Teste Silva", wantErr: true, rule: "placeholder"},
		{name: "repeated run", input: "Maaaaria Silva", wantErr: true, rule: "repeated"},
		{name: "too long", input: strings.Repeat("Ma", 20) + " " + strings.Repeat("Si", 20), wantErr: true, rule: "between 2 and 60"},
		{name: "empty", input: "", wantErr: true},
		{name: "only spaces", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFullName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateFullName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("error %v does not wrap ErrInvalidName", err)
			}
			if tt.rule != "" && !strings.Contains(err.Error(), tt.rule) {
				t.Errorf("error %q does not name rule %q", err.Error(), tt.rule)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "maria silva costa", expected: "Maria Silva Costa"},
		{input: "  MARIA   SILVA  ", expected: "Maria Silva"},
		{input: "joão DA silva", expected: "João da Silva"},
		{input: "De Souza", expected: "De Souza"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.input); got != tt.expected {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNameKey(t *testing.T) {
	if NameKey("  Maria   Silva ") != NameKey("maria silva") {
		t.Fatal("expected whitespace and case differences to collapse to the same key")
	}
	if NameKey("Maria Silva") == NameKey("Maria Souza") {
		t.Fatal("different names must not share a key")
	}
}
