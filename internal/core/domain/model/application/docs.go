// Package application contains the Application entity (a worker applying to
// a job), the per-job application Summary and the domain event emitted when
// an application is submitted.
//
// The marketplace deliberately allows multiple applications from the same
// worker to the same job; no uniqueness is enforced on the pair. The Summary
// is a denormalized aggregate kept consistent with application rows through
// a single atomic insert-or-increment at the storage layer.
package application
