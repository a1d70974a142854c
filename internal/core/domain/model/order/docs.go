// Package order provides the order aggregate and its lifecycle state machine
// for the point-of-sale system.
//
// The package includes:
//   - Order: the aggregate root holding the order number, the customer, the
//     composed food items and the total
//   - Status: a state machine that enforces valid transitions and the
//     role capabilities required to drive each edge
//
// Key business rules:
//   - Orders are created in Created status with a total equal to the sum of
//     each item's composed cost
//   - Status only ever moves forward along the defined transition graph:
//     Created -> Confirmed -> InPreparation -> Ready -> Delivered, with
//     Cancelled reachable from Created, Confirmed and InPreparation
//   - Kitchen transitions require the vendor or administrator capability,
//     cancellation the customer or administrator capability, and the final
//     Delivered step the administrator capability
//   - Cancellation is a status, not a removal: orders are never deleted
package order
