/*
Copyright © 2025 the mqstatus authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli defines the mqstatus command tree.
//
// Each collector subcommand is a complete, independent pipeline run: it
// validates options, resolves the administrative tools and the execution
// identity, collects one status view, and prints the record array to
// stdout. Fatal preconditions are returned as errors; Execute maps them to
// a single error envelope on stdout and the category's exit code.
package cli
