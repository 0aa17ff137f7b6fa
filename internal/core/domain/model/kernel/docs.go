// Package kernel provides core domain primitives for the dispatch system.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//   - GeoPoint: a value object for geographic coordinates with great-circle
//     distance computation
//
// These primitives enforce domain invariants and validation rules, are
// immutable, and are safe for concurrent use.
package kernel
