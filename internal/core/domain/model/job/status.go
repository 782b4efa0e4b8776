package job

import (
	"fmt"

	"workforce/internal/pkg/errs"
)

// Status represents the lifecycle state of a job posting.
//
// State transitions:
//
//	Open ──> Closed
//
// Newly created jobs are always Open. Closed is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status: the job accepts applications.
	Open

	// Closed means the posting no longer accepts applications.
	Closed
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:   "open",
		Closed: "closed",
	}
}

// StatusFromString parses a status from its persisted form.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid job status", s))
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid job status", s))
	}
	return nil
}

// Close transitions the status to Closed.
// Only an Open job may be closed.
func (s Status) Close() (Status, error) {
	if s != Open {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot close a job in status %q", s))
	}
	return Closed, nil
}

// String returns the persisted form of the status, or "unknown" for
// invalid values.
func (s Status) String() string {
	if name, ok := getValidStatusStrings()[s]; ok {
		return name
	}
	return "unknown"
}
