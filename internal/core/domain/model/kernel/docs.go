// Package kernel provides core domain primitives used throughout the model:
//
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a WGS84 coordinate pair with great-circle distance
//   - Money: integer minor-currency-unit amounts
//
// These primitives enforce their invariants at construction, are immutable,
// and are safe for concurrent use.
package kernel
