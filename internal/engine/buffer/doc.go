// Package buffer implements the in-memory text buffer.
//
// A Buffer is an ordered sequence of Lines. All document mutation goes
// through the Buffer, which maintains the invariant that at least one
// line always exists (an empty document is a single empty line).
//
// Row and column arguments are validated by callers; passing positions
// outside the current bounds is a programming error, not a recoverable
// condition.
package buffer
