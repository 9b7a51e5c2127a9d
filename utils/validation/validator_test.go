package validation

import (
	"testing"
)

type sampleForm struct {
	Name  string `json:"name" validate:"required,max=10"`
	Email string `json:"email" validate:"omitempty,email"`
	Slot  string `json:"slot" validate:"required,oneof=morning afternoon evening"`
}

func TestValidateStruct(t *testing.T) {
	v := NewValidator()

	valid := sampleForm{Name: "Asha", Email: "asha@example.com", Slot: "morning"}
	if err := v.ValidateStruct(valid); err != nil {
		t.Errorf("Expected valid struct to pass, got %v", err)
	}

	invalid := sampleForm{Email: "not-an-email", Slot: "midnight"}
	err := v.ValidateStruct(invalid)
	if err == nil {
		t.Fatal("Expected validation errors")
	}

	fields := FormatValidationErrors(err)
	if _, ok := fields["name"]; !ok {
		t.Error("Expected an error for missing name")
	}
	if _, ok := fields["email"]; !ok {
		t.Error("Expected an error for malformed email")
	}
	if _, ok := fields["slot"]; !ok {
		t.Error("Expected an error for out-of-range slot")
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		username string
		valid    bool
	}{
		{"admin", true},
		{"front_desk-2", true},
		{"ab", false},
		{"has space", false},
		{"semi;colon", false},
	}

	for _, tt := range tests {
		valid, msg := ValidateUsername(tt.username)
		if valid != tt.valid {
			t.Errorf("ValidateUsername(%q) = %v (%s), want %v", tt.username, valid, msg, tt.valid)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello  "); got != "hello" {
		t.Errorf("Expected whitespace trimmed, got %q", got)
	}
	if got := SanitizeString("a\x00b"); got != "ab" {
		t.Errorf("Expected null bytes removed, got %q", got)
	}
}
