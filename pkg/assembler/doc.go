// Package assembler is the pure transformation from intermediate rows to the
// typed records of the requested status kind. It owns field coercion and the
// drop-with-diagnostics policy for rows that do not match the expected shape.
package assembler
