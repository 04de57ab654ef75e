// Package order holds the checkout subsystem's durable aggregate: the
// Order and its immutable Item lines.
//
// An order is created in pending status before payment resolves, so the
// record exists regardless of how the payment path ends. Item prices are
// snapshotted from the cart summary at creation and never updated; the
// order total is always the sum of the item subtotals.
//
// Status transitions are modeled on the Status type. Payment outcomes move
// pending orders only; the administrative ChangeStatus allows any target
// except canceling a shipped order, and reports whether stock must be
// restored. A payment decline cancels the order without restoring stock.
package order
