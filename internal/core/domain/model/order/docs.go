// Package order provides the Order aggregate and its lifecycle state machine.
//
// An order is created by the validation and pricing engine in status
// "created" and from there is driven exclusively by external events:
// restaurant staff advancing preparation and delivery, or a payment webhook
// settling the bill. The package enforces:
//
//   - the one-way status chain created -> accepted -> in_preparation ->
//     prepared -> in_delivery -> finished, with canceled reachable only
//     from created
//   - cancellation and modification are legal only while the order is in
//     created; any other status yields a fixed, status-specific refusal
//   - the order total always equals the sum of its priced items at creation
//     time and is never recomputed retroactively
//
// Orders can only be created through NewOrder (or RestoreOrder when
// rehydrating from persistence), keeping every instance validated.
package order
