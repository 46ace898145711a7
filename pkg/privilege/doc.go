// Package privilege bridges command execution into the MQ service identity.
//
// Administrative queries must run as a specific service user (typically mqm).
// The bridge makes a 3-way decision per invocation: run directly when the
// process already holds that identity, run through a verified non-interactive
// sudo switch otherwise, or fail closed before any query is attempted.
// Failing fast prevents partial, misleading output when privilege is absent.
package privilege
