// Package mqsc parses the semi-structured text output of the MQ
// administrative command-line tools (dspmq, runmqsc) into flat stanzas.
//
// The output format is an external contract this suite does not own: logical
// records are introduced by a marker attribute and described by NAME(value)
// tokens that may wrap across physical lines in any order. The parser is a
// record-boundary predicate plus an attribute extraction table, so new status
// kinds add a field list, not parser logic.
package mqsc
