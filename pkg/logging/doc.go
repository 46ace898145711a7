// Package logging provides structured logging for the collector suite.
//
// It wraps the standard library slog package with suite-wide conventions:
// JSON records on stderr, module/version context on every record, and source
// location tracking at debug level. The primary output stream (stdout) is
// reserved for collector JSON records, so all diagnostics go to stderr and,
// optionally, to a size-rotated log file for runs under a scheduler that
// discards stderr.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("mqstatus", version, "info", "")
//	    slog.Info("starting", "kind", "listener")
//	}
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is passed:
//
//	LOG_LEVEL=debug mqstatus msgage
package logging
