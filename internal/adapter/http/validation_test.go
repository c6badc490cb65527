package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(details []FieldError, field, fragment string) bool {
	for _, d := range details {
		if d.Field == field && strings.Contains(d.Message, fragment) {
			return true
		}
	}
	return false
}

func TestValidLoanID(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0123456789abcdef0123456789abcdef", true},
		{"0123456789ABCDEF0123456789ABCDEF", false}, // uppercase not accepted
		{"0123456789abcdef0123456789abcde", false},  // 31 chars
		{"0123456789abcdef0123456789abcdef0", false},
		{"", false},
		{"not-a-loan-id", false},
	}
	for _, tc := range cases {
		if got := ValidLoanID(tc.in); got != tc.want {
			t.Errorf("ValidLoanID(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidator_PhoneTag(t *testing.T) {
	cv := NewValidator()
	type s struct {
		Phone string `validate:"phone"`
	}
	valid := []string{"1234567", "987654321012345", "9876543210"}
	for _, p := range valid {
		if err := cv.Validate(s{Phone: p}); err != nil {
			t.Errorf("phone %q rejected: %v", p, err)
		}
	}
	invalid := []string{"123456", "9876543210123456", "+919876543210", "98-76-54", "abc1234"}
	for _, p := range invalid {
		if err := cv.Validate(s{Phone: p}); err == nil {
			t.Errorf("phone %q accepted, want rejection", p)
		}
	}
}

func TestValidator_Dec2Tag(t *testing.T) {
	cv := NewValidator()
	type s struct {
		Amount float64 `validate:"dec2"`
	}
	valid := []float64{0, 100, 100.5, 100.25, 99999.99, -3.25}
	for _, a := range valid {
		if err := cv.Validate(s{Amount: a}); err != nil {
			t.Errorf("amount %v rejected: %v", a, err)
		}
	}
	invalid := []float64{0.001, 100.255, 3.14159}
	for _, a := range invalid {
		if err := cv.Validate(s{Amount: a}); err == nil {
			t.Errorf("amount %v accepted, want rejection", a)
		}
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()
	type s struct {
		Name   string  `validate:"required"`
		Age    int     `validate:"gte=18,lte=120"`
		Amount float64 `validate:"gt=0"`
	}
	err := cv.Validate(s{Age: 10, Amount: 0})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	details := ToFieldErrors(err)
	if !containsFieldMsg(details, "Name", "is required") {
		t.Errorf("missing Name message: %+v", details)
	}
	if !containsFieldMsg(details, "Age", "greater than or equal to 18") {
		t.Errorf("missing Age message: %+v", details)
	}
	if !containsFieldMsg(details, "Amount", "greater than 0") {
		t.Errorf("missing Amount message: %+v", details)
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	details := ToFieldErrors(errors.New("boom"))
	if len(details) != 1 || details[0].Field != "_" {
		t.Fatalf("unexpected details: %+v", details)
	}
}
