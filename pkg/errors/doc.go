// Package errors provides structured error types for the collector suite and
// the mapping from error categories to the shared process exit codes.
//
// Fatal precondition failures (missing registry, privilege denial, missing
// administrative tools) are classified with an ErrorCode; ExitCode translates
// the classification into the exit code the monitoring agent expects.
//
// Example usage:
//
//	err := errors.Wrap(
//	    errors.ErrCodeToolMissing,
//	    "dspmq not found in MQ bin dir",
//	    lookupErr,
//	)
//	os.Exit(errors.ExitCode(err))
package errors
