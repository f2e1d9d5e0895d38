package shared

import (
	"errors"
	"fmt"
)

// Kind is a stable identifier for an engine validation or consistency failure.
type Kind string

const (
	// KindNotANumber indicates the input could not be parsed as a real number.
	KindNotANumber Kind = "NOT_A_NUMBER"
	// KindNegative indicates a value that must not be negative.
	KindNegative Kind = "NEGATIVE"
	// KindMustBeNonZero indicates a value that must be strictly positive.
	KindMustBeNonZero Kind = "MUST_BE_NON_ZERO"
	// KindNegativeRate indicates a GST rate below zero.
	KindNegativeRate Kind = "NEGATIVE_RATE"
	// KindRateTooHigh indicates a GST rate above the 28% ceiling.
	KindRateTooHigh Kind = "RATE_TOO_HIGH"
	// KindNotAScheduledRate indicates an in-range rate outside the GST schedule.
	KindNotAScheduledRate Kind = "NOT_A_SCHEDULED_RATE"
	// KindInsufficientKnownValues indicates too few equation terms were supplied.
	KindInsufficientKnownValues Kind = "INSUFFICIENT_KNOWN_VALUES"
	// KindUnbalanced indicates journal debit and credit totals differ.
	KindUnbalanced Kind = "UNBALANCED"
	// KindEmptyAccountName indicates a posting without an account name.
	KindEmptyAccountName Kind = "EMPTY_ACCOUNT_NAME"
	// KindNoPostings indicates an entry with no posting lines.
	KindNoPostings Kind = "NO_POSTINGS"
	// KindPostingNotOneSided indicates a posting that is not exactly one of debit or credit.
	KindPostingNotOneSided Kind = "POSTING_NOT_ONE_SIDED"
	// KindReverseChargeNotPosted indicates standard postings were suppressed under reverse charge.
	KindReverseChargeNotPosted Kind = "REVERSE_CHARGE_NOT_POSTED"
	// KindEquationImbalance indicates post-solve verification failed.
	KindEquationImbalance Kind = "EQUATION_IMBALANCE"
)

// Class groups kinds by recovery semantics.
type Class string

const (
	// ClassInput marks malformed or out-of-range user input.
	ClassInput Class = "input"
	// ClassPrecondition marks requests missing required known values.
	ClassPrecondition Class = "precondition"
	// ClassConsistency marks data-entry mistakes such as an unbalanced entry.
	ClassConsistency Class = "consistency"
	// ClassDefect marks internal arithmetic failures that should be unreachable.
	ClassDefect Class = "defect"
)

var kindClasses = map[Kind]Class{
	KindNotANumber:              ClassInput,
	KindNegative:                ClassInput,
	KindMustBeNonZero:           ClassInput,
	KindNegativeRate:            ClassInput,
	KindRateTooHigh:             ClassInput,
	KindNotAScheduledRate:       ClassInput,
	KindInsufficientKnownValues: ClassPrecondition,
	KindUnbalanced:              ClassConsistency,
	KindEmptyAccountName:        ClassConsistency,
	KindNoPostings:              ClassConsistency,
	KindPostingNotOneSided:      ClassConsistency,
	KindReverseChargeNotPosted:  ClassConsistency,
	KindEquationImbalance:       ClassDefect,
}

// Error is a structured engine error carrying the offending field and a
// human-readable reason.
type Error struct {
	Kind   Kind
	Field  string
	Reason string
}

// Error returns the formatted error string.
func (e Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Reason, e.Field)
}

// ClassOf returns the recovery class for the error kind.
func (e Error) ClassOf() Class {
	return kindClasses[e.Kind]
}

// NewError creates a structured engine error.
func NewError(kind Kind, field, reason string) error {
	return Error{Kind: kind, Field: field, Reason: reason}
}

// KindOf extracts the kind from err, or the empty kind when err is not an
// engine error.
func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func classMatches(err error, class Class) bool {
	var e Error
	if !errors.As(err, &e) {
		return false
	}
	return e.ClassOf() == class
}

// IsInput reports whether err is a recoverable input error.
func IsInput(err error) bool { return classMatches(err, ClassInput) }

// IsPrecondition reports whether err is a missing-precondition error.
func IsPrecondition(err error) bool { return classMatches(err, ClassPrecondition) }

// IsConsistency reports whether err signals a data-entry inconsistency.
func IsConsistency(err error) bool { return classMatches(err, ClassConsistency) }

// IsDefect reports whether err signals an internal arithmetic defect.
func IsDefect(err error) bool { return classMatches(err, ClassDefect) }
