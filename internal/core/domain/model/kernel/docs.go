// Package kernel provides the core domain primitives of the marketplace.
//
// It contains the value objects shared by every aggregate:
//   - UUID: validated unique identifiers for users, jobs and applications
//   - GeoPoint: a validated WGS84 coordinate pair
//   - CellID: an opaque hierarchical spatial cell identifier derived from a
//     GeoPoint through the H3 hexagonal indexing scheme
//
// All primitives are immutable, enforce their invariants through
// constructors, and are safe for concurrent use.
package kernel
