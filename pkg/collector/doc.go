// Package collector implements the per-kind status collectors: for each
// resolved queue manager they issue administrative queries under the service
// identity, parse the output into stanzas, and emit normalized intermediate
// rows for the assembler.
//
// Failure semantics are uniform across kinds: an invalid resource name or a
// failed per-resource query degrades to an INVALID-tagged or sentinel-valued
// row and processing continues with the next resource. Only invocation-wide
// preconditions (an unwritable registry for the manager collector) surface
// as errors.
package collector
