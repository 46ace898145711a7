// Package serializer emits record batches and the fatal-error envelope on
// the primary output stream.
//
// JSON is the wire format (stable schema per status kind, arrays only, [] on
// empty); YAML is retained for interactive debugging. Emission must never
// fail for empty or all-sentinel batches.
package serializer
