// Package order provides the Order aggregate and its lifecycle state machine.
//
// An Order is one merchant's share of a checkout: its lines, the money
// reconciliation (subtotal = Σ line amounts, total = subtotal + delivery
// fee), the delivery destination, and the lifecycle status. After creation
// everything except status is immutable; status advances only along the
// legal edges of the state machine and only for an authorized actor.
package order
