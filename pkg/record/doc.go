// Package record declares the typed status records every collector emits and
// the resource-name validation rule shared by all of them.
//
// Field names carry exact JSON tags because the serialized form is consumed
// by a monitoring agent with a fixed schema per status kind.
package record
