// Package kvstore provides the synchronous string-keyed persistence layer
// backing the content stores. All backends share the same contract: values
// are opaque strings, writes replace the whole value under a key, and
// capacity rejection is reported distinctly from other failures.
package kvstore

import "errors"

// ErrQuotaExceeded is returned by Set when the backend refuses a write
// because the store is at capacity.
var ErrQuotaExceeded = errors.New("kvstore: quota exceeded")

// Store is the synchronous key-value contract shared by all backends.
// Get reports whether the key exists; a missing key is not an error.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string)
}
