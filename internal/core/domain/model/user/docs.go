// Package user provides the domain model for the user directory.
//
// The directory holds two variants of User discriminated by Role:
//   - Employee: a human member who may carry the approver flag that makes
//     them a report recipient
//   - Bot: the single automated identity reports are sent from
//
// An email address is optional on any user. Absence of an address is a
// legal data-quality state, not an error; such users are silently skipped
// during dispatch.
package user
