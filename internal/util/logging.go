// Package util provides common utilities including logging helpers,
// file system operations, and string manipulation functions.
package util

import (
	"log"
	"sync/atomic"
)

var verbose atomic.Bool

// SetVerbose enables Debugf output.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// Debugf logs only when verbose logging is on.
func Debugf(format string, args ...interface{}) {
	if verbose.Load() {
		log.Printf("debug: "+format, args...)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}
