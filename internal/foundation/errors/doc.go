// Package errors provides the classified error primitives used across pagesmith.
//
// A ClassifiedError carries a category, a severity and structured context on top of
// an optional cause. Domain packages keep their own typed errors (missing config
// fields, failed external commands) and wrap them here when they cross a package
// boundary, so the CLI can log a consistent category for every failure.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryExternal, "scaffold failed").
//		WithContext("command", cmdLine).
//		Build()
package errors
