// Package queries contains read-only operations. Handlers read through
// *gorm.DB with parameterized SQL and return flat response structs rather
// than aggregates. Reads that are scoped by role or ownership take the
// caller's identity and check it against the policy before touching rows
// they may not see.
package queries
