package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := InvalidParameters([]FieldError{{Field: "count", Message: "too small"}})
	wrapped := fmt.Errorf("handle request: %w", err)

	if !errors.Is(wrapped, ErrInvalidParameter) {
		t.Fatalf("expected %v to match ErrInvalidParameter", wrapped)
	}
	if errors.Is(wrapped, ErrInvalidDigit) {
		t.Fatalf("did not expect %v to match ErrInvalidDigit", wrapped)
	}
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Code: CodeNotConfigured, Message: "wrap", Cause: cause}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable")
	}
}

func TestTierLabelsAndDigits(t *testing.T) {
	cases := []struct {
		tier   Tier
		digits int
		label  string
	}{
		{TierUnits, 1, "1-10"},
		{TierTens, 2, "10-100"},
		{TierHundreds, 3, "100-1000"},
		{TierThousands, 4, "1000-10000"},
	}
	for _, tc := range cases {
		if tc.tier.Digits() != tc.digits {
			t.Fatalf("tier %d digits = %d, want %d", tc.tier, tc.tier.Digits(), tc.digits)
		}
		if tc.tier.Label() != tc.label {
			t.Fatalf("tier %d label = %q, want %q", tc.tier, tc.tier.Label(), tc.label)
		}
	}
}
