// Package identity models accounts, roles and the authorization policy.
//
// The package includes:
//   - User: the account aggregate holding login, password hash, role and profile fields
//   - Role: customer, driver or manager
//   - Identity: the authenticated caller, an opaque login and role pair
//   - Policy: the table mapping each role to the actions it may perform
//
// Key business rules:
//   - Self-registered accounts are always customers with no favorite item
//   - Phone numbers are exactly ten digits
//   - Customers may read only their own orders; drivers and managers read all orders
//   - Only drivers and managers transition order status
//   - Only managers mutate the catalog or other users' login and role
package identity
