// Package medicine provides the order aggregate of the compounding service.
// It implements the Medicine aggregate root with its lifecycle state machine
// and the composition of substance line items.
//
// Key business rules:
//   - Order status follows Draft -> Formed -> Completed/Rejected, with
//     Draft -> Deleted as the owner's withdrawal path
//   - The composition holds at most one line per substance and is editable
//     only while the order is a Draft, only by its owner
//   - The dose is written by an external calculation service through an
//     unguarded asynchronous callback
//
// The package follows the same aggregate conventions as the rest of the
// domain model: private fields, validating constructors, a Restore function
// for persistence, and transition methods that return taxonomy errors.
package medicine
