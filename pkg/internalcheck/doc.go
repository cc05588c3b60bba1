// Package internalcheck contains repository policy tests.
//
// The checks parse the secret-bearing packages (pkg/nada, pkg/array) with
// golang.org/x/tools/go/packages and fail if code formats secret material in
// ways the logging policy forbids, e.g. hex-dumping values that may carry
// bound inputs in audit runs.
package internalcheck
