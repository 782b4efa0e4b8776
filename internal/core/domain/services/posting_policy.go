package services

import (
	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/core/domain/model/user"
	"workforce/internal/pkg/errs"
)

// PostingPolicy authorizes job creation.
//
// Business rules:
//   - the requester must exist and hold the employer role
//   - when delegation is disabled, the requester must be the owning employer
//
// Example:
//
//	policy := services.NewPostingPolicy(false)
//	if err := policy.AuthorizeJobPosting(requester, employerID); err != nil {
//	    // errs.ErrUnauthorized
//	}
type PostingPolicy struct {
	allowDelegation bool
}

// NewPostingPolicy creates a posting policy. allowDelegation controls
// whether an employer may create jobs owned by a different employer.
func NewPostingPolicy(allowDelegation bool) PostingPolicy {
	return PostingPolicy{allowDelegation: allowDelegation}
}

// AuthorizeJobPosting checks that requester may create a job owned by
// employerID. Returns an UnauthorizedError on any rule breach.
func (p PostingPolicy) AuthorizeJobPosting(requester *user.User, employerID kernel.UUID) error {
	if err := requester.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause("only employers can create jobs", err)
	}
	if err := employerID.Validate(); err != nil {
		return err
	}

	if requester.Role() != user.Employer {
		return errs.NewUnauthorizedError("only employers can create jobs")
	}

	if !p.allowDelegation && !requester.ID().IsEqual(employerID) {
		return errs.NewUnauthorizedError("posting on behalf of another employer is not allowed")
	}

	return nil
}
