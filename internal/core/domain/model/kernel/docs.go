// Package kernel provides the value objects shared by every aggregate of the
// ordering workflow.
//
// The package includes:
//   - Login: the case-insensitive account key, normalized to trimmed lower case
//   - Money: a non-negative amount with cent precision backed by shopspring/decimal
//   - UUID: an identifier for records that have no natural key
//
// All values are immutable. Zero values are invalid and report an error from Validate.
package kernel
