// Package kernel contains shared value objects used across the reporting
// domain: UUID identifiers and validated Email addresses. All kernel types
// are immutable, constructed through validating factory functions, and
// detect zero-value misuse via constructor guards.
package kernel
