package shared

import (
	"errors"
	"fmt"
	"testing"

	_ "github.com/lekha-engine/lekha-engine/testing"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError(KindNegative, "amount", "amount cannot be negative")
	if got := err.Error(); got != "NEGATIVE: amount cannot be negative (amount)" {
		t.Fatalf("unexpected message %q", got)
	}
	bare := NewError(KindUnbalanced, "", "off by 5")
	if got := bare.Error(); got != "UNBALANCED: off by 5" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestClassPredicates(t *testing.T) {
	cases := []struct {
		kind  Kind
		check func(error) bool
	}{
		{KindNotANumber, IsInput},
		{KindNotAScheduledRate, IsInput},
		{KindInsufficientKnownValues, IsPrecondition},
		{KindUnbalanced, IsConsistency},
		{KindReverseChargeNotPosted, IsConsistency},
		{KindEquationImbalance, IsDefect},
	}
	for _, tc := range cases {
		err := NewError(tc.kind, "f", "r")
		if !tc.check(err) {
			t.Fatalf("kind %s failed its class predicate", tc.kind)
		}
	}
	if IsInput(errors.New("plain")) {
		t.Fatalf("plain errors must not match any class")
	}
}

func TestKindOfUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NewError(KindNoPostings, "postings", "empty"))
	if KindOf(wrapped) != KindNoPostings {
		t.Fatalf("KindOf must unwrap, got %s", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("plain errors have no kind")
	}
}
