package platform2d

import "errors"

// Sentinel errors returned (wrapped) by constructors and collection lookups.
// Test for them with errors.Is.
var (
	// ErrInvalidArgument reports a missing required constructor input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateKey reports an Add under a name that is already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrKeyNotFound reports a lookup of a name that is not present.
	ErrKeyNotFound = errors.New("key not found")
)
