// Package services contains stateless domain services that implement
// business rules spanning more than one aggregate.
//
// PostingPolicy decides whether a requesting user may create a job for a
// given employer. The role check is strict; whether a requester may post on
// another employer's behalf is a deployment decision, so the policy carries
// it as explicit configuration instead of hard-coding either answer.
package services
