// Package status classifies NI-XNET status codes.
//
// Every native entry point returns a signed 32-bit status. Negative values
// are errors, positive values are warnings and zero is success. A Classifier
// resolves the code against a closed table of kinds, falling back to
// KindUnclassified for codes it does not know, and fetches the driver's
// description into a fixed buffer (DefaultBufferSize bytes, truncated
// silently when the description is longer).
//
// Errors are returned as *StatusError, which also implements the platform
// error interface from github.com/jmgilman/go/errors so callers can use
// GetCode and IsRetryable. Warnings never become errors: Check reports them
// through the diagnostics handler (see SetHandler) and lets the call succeed.
// The same handler receives resource lifecycle misuse such as duplicate
// closes and leaked handles.
package status
