// Package registry implements the shared queue-manager registry: a JSON
// snapshot of known managers and their run states, written only by the
// manager-status collector and read by every other collector.
//
// Replacement is atomic (temp file then rename), so readers never observe a
// partially written snapshot. Two invocations may legitimately observe
// different snapshots taken at different times.
package registry
