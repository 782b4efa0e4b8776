// Package user contains the User aggregate and its Role value object.
//
// Users are immutable once created: the marketplace defines no update path
// for them. A user's role (admin, employer or worker) determines what
// operations they may perform; only employers can own jobs.
package user
