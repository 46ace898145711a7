/*
Copyright © 2025 the mqstatus authors
SPDX-License-Identifier: Apache-2.0
*/

// Package version holds the build metadata stamped in with ldflags.
package version

import "fmt"

var (
	// Name is the binary name.
	Name = "mqstatus"
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = "unknown"
	// Date is the build timestamp.
	Date = "unknown"
)

// Info returns a one-line human-readable build description.
func Info() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", Name, Version, Commit, Date)
}
