// Package catalog declares the application's permissions, roles and role groups.
//
// Permission identifiers are durable: they are stored with user records, so a
// value must never be renamed or reused once shipped. Adding a permission means
// adding a constant here, appending it to [Permissions], and granting it to the
// roles that need it. [OrgAdmin] and [Custom] pick it up automatically.
//
// Changes to this package need review from a senior engineer other than the
// author.
package catalog
