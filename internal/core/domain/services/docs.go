// Package services contains the domain services of the reporting pipeline:
// RecipientResolver, which derives the Bot sender and the approver
// recipient list from a fetched directory, and ReportDispatcher, which
// delivers a built report over the mail transport with skip-on-missing-
// address and fail-fast-abort semantics.
package services
