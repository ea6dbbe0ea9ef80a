// Package resource manages the lifetime of native handles.
//
// A Guard moves from open to closed exactly once. Use after close fails
// locally, double close is reported as a diagnostic, and guards still open
// at teardown are reported by Tracker.ReportLeaks. Table adds reference
// counting for handles that several callers open under the same key.
package resource
