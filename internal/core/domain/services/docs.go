// Package services holds stateless domain services that work across the order,
// catalog and agent models:
//
//   - ItemParser resolves free-text order lines against the menu
//   - OrderPricer validates structured lines and totals them
//   - MessageComposer renders the vendor, customer and agent notifications
//
// None of them touch storage; use cases load the inputs and persist the results.
package services
