// Package services contains stateless domain services shared across
// use cases:
//
//   - Tariff: the distance-to-fee delivery pricing policy
//   - PaymentLinkBuilder: the UPI deep link for the external payment step
//
// Both are pure: no persistence, no clock, no network.
package services
