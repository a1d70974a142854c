// Package account provides the user identity and the role/authorization model
// of the point-of-sale system. Every user carries exactly one concrete role at
// a time, drawn from the three disjoint capabilities Customer, Vendor (the
// kebabbaro behind the counter) and Administrator.
//
// The role is a tagged variant with an explicit discriminator rather than a
// probe-by-exception hierarchy: exactly one of the three accessor operations
// succeeds on any given Role, the other two fail with
// MissingAuthorizationError.
package account
