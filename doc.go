// Package goRoles builds immutable role tables from a closed set of permission
// identifiers and a list of role definitions composed by map merge.
//
// A [Builder] collects a permission [enum.Enumeration], role specs, an optional
// deny-all baseline role and ordered role groups; [Builder.Build] resolves every
// role once, in declaration order, and returns a [Table] that is read-only for
// the rest of the process lifetime. Tables are safe for concurrent reads.
//
// # Default deny
//
// A permission key absent from a role's map is denied, identical to the key
// being present with false. [Role.Allows] and [Table.Allows] implement that
// contract; any external authorization check built on [Role.PermissionMap]
// must do the same.
//
// # Architecture boundaries
//
// goRoles is the public surface. Bit assignment, mask compilation and grant
// merging live in package permission; the concrete application data lives in
// package catalog.
//
// # What this package must NOT do
//
//   - Persist roles, assignments or tables.
//   - Evaluate policies or decide whether a user holds a permission.
//   - Change a table after [Builder.Build] returns.
package goRoles
