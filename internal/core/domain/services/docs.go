// Package services implements the order validation and pricing engine: the
// deterministic rules that turn loosely structured requested order lines into
// a priced, validated order.
//
// The package includes:
//   - PizzaPricer: validates and prices the half/half pizza sub-language
//   - ItemValidator: validates one order line against catalog constraints
//   - OrderPricer: order-level gates, totals, minimum-value enforcement, ETA
//
// Every service is a pure function of its inputs (catalog snapshot,
// restaurant settings, current time, requested lines); nothing here holds
// state, blocks, or reads the clock, so concurrent validation passes for
// unrelated orders need no coordination.
//
// Per-item violations are collected, never thrown on first failure: the
// caller receives one ValidationErrors value describing every problem in the
// submitted order so the customer can fix them in a single round trip.
package services
