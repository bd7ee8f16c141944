// Package permission provides permission grant maps, their merge composition, a
// frozen permission registry, and fixed-size bitmasks that role tables compile to.
//
// # Grants and merge
//
// A role's permissions are a [Grants] map from permission name to granted flag.
// [Merge] unions any number of [Source] values, later sources overriding earlier
// ones on key collision. A key absent from a map means denied; consumers must
// treat absence and an explicit false identically.
//
// # Mask sizes
//
// Supported widths: 64, 128, 256, and 512 bits. A mask is selected at registry
// construction time and is immutable thereafter. Bit positions are assigned by
// [Registry.Register] in registration order and are stable for the lifetime of
// the process.
//
// # What this package must NOT do
//
//   - Access databases or the network.
//   - Import goRoles or any package that builds role tables.
//   - Dynamically resize masks after registry construction.
package permission
