// Package job contains the Job aggregate: a unit of work posted by an
// employer at a geographic position.
//
// A job's spatial cell identifier is derived from its coordinates at
// creation time and is never supplied by callers or mutated independently;
// it is the indexing key the query layer groups proximity lookups by.
package job
