// Package order holds the Order aggregate and its lifecycle state machine.
//
// Status follows Pending -> Accepted -> Ready -> Assigned -> Delivered, with
// Pending -> Rejected as the refusal branch. PaymentStatus runs alongside:
// a payment may be requested once the order is Assigned or Delivered, and
// confirming a requested payment moves both PaymentStatus and Status to Paid.
// Rejected and Paid are terminal.
//
// Each transition stamps its own timestamp exactly once. Failed transitions
// return *errs.InvalidTransitionError and leave the order unchanged.
package order
