// Package jwt issues and verifies signed role grants: short-lived tokens that
// carry a role name and that role's encoded permission mask.
package jwt
