// Package realmerrors provides structured error types for the realmtools library.
//
// Import path: github.com/erraggy/realmtools/realmerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides three core error types:
//
//   - [ParseError]: JSON/YAML parsing failures and unreadable sources
//   - [DocumentError]: structural issues in a realm export document
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrDocument]: Matches any [DocumentError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("realm.json"))
//	if errors.Is(err, realmerrors.ErrParse) {
//	    // Handle parse error
//	}
//
// Extract error details with errors.As():
//
//	var docErr *realmerrors.DocumentError
//	if errors.As(err, &docErr) {
//	    fmt.Printf("bad document field: %s\n", docErr.Field)
//	}
package realmerrors
