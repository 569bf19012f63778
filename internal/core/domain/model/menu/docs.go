// Package menu defines the catalog records the validation engine prices
// against: products, variants, modifier groups, modifiers, and pizza
// ingredients, each carrying an availability flag.
//
// The records are plain data resolved once per validation pass into a
// Snapshot, an immutable id-indexed view. The engine never re-reads the
// catalog mid-validation, so a snapshot is a point-in-time truth: a catalog
// change after the snapshot was taken only affects later orders.
package menu
