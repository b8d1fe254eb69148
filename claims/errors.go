package claims

import "errors"

// Failure kinds returned by the service. Callers branch on these with
// errors.Is, never on message text.
var (
	ErrItemNotFound   = errors.New("item not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrAlreadyClaimed = errors.New("item has already been claimed")

	// ErrConstraintViolation: the write broke referential integrity,
	// e.g. the item was cascade-deleted mid-flight. Not retryable.
	ErrConstraintViolation = errors.New("claim rejected by storage constraints")

	// ErrStorageUnavailable: timeout or lost connection before commit.
	// Nothing was persisted; the whole call may be retried.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)
