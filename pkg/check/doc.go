// Package check provides the input-validation layer shared by the frame and
// framelist packages.
//
// Every helper inspects a value (or a batch of values) against one
// constraint and returns a *ValidationError describing the first violation,
// or nil when the constraint holds. Helpers never terminate the process;
// callers decide whether to abort or recover.
//
// A ValidationError carries the failed check code, the operation that
// requested the check, and the offending value with its position in the
// batch, so diagnostics survive wrapping with fmt.Errorf("%w").
package check
