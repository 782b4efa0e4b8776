package application

import (
	"fmt"

	"workforce/internal/pkg/errs"
)

// Status represents the review state of an application.
// Every application starts Pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of every application.
	Pending

	// Accepted means the employer took the applicant.
	Accepted

	// Rejected means the employer declined the applicant.
	Rejected
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Accepted: "accepted",
		Rejected: "rejected",
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
		fmt.Errorf("%q is not a valid application status", s))
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid application status", s))
	}
	return nil
}

// String returns the persisted form of the status, or "unknown" for
// invalid values.
func (s Status) String() string {
	if name, ok := getValidStatusStrings()[s]; ok {
		return name
	}
	return "unknown"
}
