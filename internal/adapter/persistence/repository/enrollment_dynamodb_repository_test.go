package repository

import (
	"strings"
	"testing"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestPhoneKey(t *testing.T) {
	cases := []struct {
		name   string
		digits string
		want   string
	}{
		{"prefixed 11-digit mobile", "5527999999999", "27999999999"},
		{"prefixed 10-digit landline", "552733334444", "2733334444"},
		{"national mobile unchanged", "27999999999", "27999999999"},
		{"national landline unchanged", "2733334444", "2733334444"},
		{"11-digit starting with 55 is a national number", "55999999999", "55999999999"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := phoneKey(tc.digits); got != tc.want {
				t.Fatalf("phoneKey(%q) = %q, want %q", tc.digits, got, tc.want)
			}
		})
	}
}

func TestDuplicateScanFilter_PhonePrefixVariants(t *testing.T) {
	stored := entities.Enrollment{PhoneDigits: "27999999999"}
	probe := interfaces.DuplicateProbe{PhoneDigits: "5527999999999"}

	filter, names, values := duplicateScanFilter(probe)

	if !strings.Contains(filter, "#phone_key = :phone_key") {
		t.Fatalf("filter missing phone_key clause: %s", filter)
	}
	if names["#phone_key"] != "phone_key" {
		t.Fatalf("missing phone_key attribute name: %v", names)
	}
	key, ok := values[":phone_key"].(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("missing :phone_key value: %v", values)
	}
	// The stored national-form record carries this same key, so the equality
	// clause matches even though the stored digits do not contain the
	// submitted prefixed digits.
	if key.Value != phoneKey(stored.PhoneDigits) {
		t.Fatalf("probe key %q does not match stored key %q", key.Value, phoneKey(stored.PhoneDigits))
	}
	if toEnrollmentItem(stored).PhoneKey != key.Value {
		t.Fatalf("persisted phone_key %q does not match probe key %q", toEnrollmentItem(stored).PhoneKey, key.Value)
	}
}

func TestDuplicateScanFilter_EmptyProbe(t *testing.T) {
	filter, _, _ := duplicateScanFilter(interfaces.DuplicateProbe{})
	if filter != "" {
		t.Fatalf("expected empty filter for empty probe, got %s", filter)
	}
}

func TestUniqueFields_PhoneMarkerCanonical(t *testing.T) {
	prefixed := uniqueFields(entities.Enrollment{PhoneDigits: "5527999999999"})
	national := uniqueFields(entities.Enrollment{PhoneDigits: "27999999999"})

	if prefixed["phone"] != national["phone"] {
		t.Fatalf("phone markers differ: %q vs %q", prefixed["phone"], national["phone"])
	}
	if uniqueMarkerID("phone", prefixed["phone"]) != uniqueMarkerID("phone", national["phone"]) {
		t.Fatal("prefixed and national forms must collide on the same marker item")
	}
}
