// Package policy loads a compiled role table into a casbin enforcer.
//
// Role inheritance is flattened before loading: every role contributes one
// "p" rule per granted permission, so explicit revocations in child roles are
// preserved. The "g" section is left to the caller for attaching users to
// roles in memory.
package policy
