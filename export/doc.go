// Package export renders a resolved role table for audit and review.
//
// The document lists every permission with its bit, every role with its
// flattened grants and encoded mask, and every role group in order. Output is
// deterministic so that rendered files can be diffed in code review.
package export
