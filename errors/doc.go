// Package errors provides structured error types for the bincodec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go type name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTruncatedInput).
//		Path("user", "name").
//		Detail("need 4 bytes, 2 remain").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(path, 4, 2)
//	err := errors.InvalidDiscriminant(path, 0x02)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so sentinel comparisons like
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindTruncatedInput})
//
// work regardless of path or detail.
package errors
