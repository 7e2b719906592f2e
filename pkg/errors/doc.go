// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeCommandFailed,
//	    "failed to run compiler",
//	    err,
//	    map[string]any{
//	        "command": "gcc -dumpversion",
//	        "family": "gnu",
//	    },
//	)
//
// Callers branch on the code rather than the message:
//
//	if errors.IsCode(err, errors.ErrCodeUnknownCompiler) {
//	    // fall back to a conservative flag set
//	}
package errors
