// Package cart implements the client-session cart: an in-memory list of
// product lines spanning possibly multiple merchants, pending order
// placement.
//
// Key rules:
//   - Adding an existing product increments its quantity, never duplicates
//   - A quantity change that reaches zero removes the line; quantities
//     below 1 cannot exist
//   - Every mutation notifies subscribers with the new item count
//   - The cart has no persistence; it lives and dies with its session
package cart
