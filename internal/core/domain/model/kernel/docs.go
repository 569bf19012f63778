// Package kernel provides core domain primitives for the ordering system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A decimal-backed amount value object with exact comparisons
//
// These primitives enforce domain invariants and validation rules. They are
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
