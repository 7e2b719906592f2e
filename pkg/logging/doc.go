// Package logging provides structured logging utilities for ccversion.
//
// # Overview
//
// This package wraps the standard library slog package with ccversion defaults:
// JSON records on stderr, a module/version context on every record, and
// source locations when running at debug level. Report output goes to stdout,
// so logs never mix with a YAML or JSON report.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: compiler command lines and exit codes, with source location
//   - INFO: detected versions (default)
//   - WARN/WARNING: recoverable problems such as a failed close
//   - ERROR: failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("ccversion", "v1.0.0")
//	    slog.Info("detecting compiler", "cc", "gcc")
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("ccversion", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// level is passed explicitly:
//
//	LOG_LEVEL=debug ccversion detect
//
// # Output Format
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "cc version 11.2.0 is detected",
//	    "module": "ccversion",
//	    "version": "v1.0.0"
//	}
package logging
