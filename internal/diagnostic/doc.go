// Package diagnostic provides structured errors, warnings and infos
// collected while checking a record layout.
//
// Key capabilities:
//   - Coded diagnostics that tests and tools can match on
//   - Field-level context for every message
//   - Suggestions for likely typos (e.g. an unknown field type)
//   - A combined error for callers that only need pass/fail
package diagnostic
