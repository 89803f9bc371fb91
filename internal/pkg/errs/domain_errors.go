package errs

import "errors"

// Category markers shared across layers. Concrete errors are attached with Mark
// so handlers can branch on the category with errs.Is.
var (
	// Blocks an action before any request is made
	ErrValidation = errors.New("validation failed")

	// Remote API errors (network failure or non-2xx status)
	ErrRequestFailed = errors.New("remote request failed")

	// Absence of a resource the caller addressed directly
	ErrNotFound = errors.New("not found")

	// Session persistence errors
	ErrStoreOperationFailed = errors.New("session store operation failed")
)
