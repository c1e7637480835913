// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.CodeForFileError(err),
//	    "failed to read version file",
//	    err,
//	    map[string]any{
//	        "path": path,
//	        "op":   "read",
//	    },
//	)
package errors
