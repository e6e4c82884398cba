// Package framelist provides batch operations over ordered lists of
// frames, mirroring the single-table operations of pkg/frame across every
// element of a list.
//
// Lists are processed in order and tolerate heterogeneous shapes: no
// operation requires the frames in a list to share columns, index, or row
// count, though some log a warning when a mismatch is likely to surprise.
// Soft conditions — a file that does not exist, a column a frame lacks —
// are logged and aggregated into the returned report or counts; the
// operation continues with the remaining elements. Violated preconditions
// (unequal paired-list lengths, invalid enum parameters, non-numeric
// cells) surface as *check.ValidationError.
//
// Operations documented as in-place mutate the caller's frames and are not
// safe for concurrent use on the same list without external
// synchronization. Copy-mode operations return independent frames.
package framelist
