package sfoglia

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrTextureNotFound indicates a draw referenced a cache key that was
	// never loaded.
	ErrTextureNotFound = errors.New("texture not found in cache")

	// ErrTextAlreadyLoaded indicates LoadText was called twice with the same
	// text. Text entries are load-once; reuse the cached key instead.
	ErrTextAlreadyLoaded = errors.New("text already loaded")

	// ErrClosed indicates an operation was attempted on a closed Core.
	ErrClosed = errors.New("core is closed")

	// ErrNoPaint indicates a render request carried neither a color nor a
	// texture key.
	ErrNoPaint = errors.New("render data has no paint")
)

// OpError represents a failure inside the SDL resource layer (subsystem
// init, window or renderer creation, resource load, draw). It wraps the
// native error and names the operation that failed.
//
// All failures here are unrecoverable at the point of origin; the wrapper
// performs no retries.
type OpError struct {
	Op  string // Operation that failed (e.g., "create_window", "load_texture")
	Err error  // Underlying error
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sfoglia: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sfoglia: %s", e.Op)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func newOpError(op string, err error) *OpError {
	return &OpError{Op: op, Err: err}
}

// IsOpError checks if an error originated in the SDL resource layer.
func IsOpError(err error) bool {
	var opErr *OpError
	return errors.As(err, &opErr)
}
