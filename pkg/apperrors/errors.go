package apperrors

import "errors"

// Sentinel errors returned by repositories so that controllers can map an
// outcome to the right HTTP status without parsing message strings.
var (
	// ErrNotFound means the requested resource id does not resolve.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden means the acting user is authenticated but not entitled
	// to act on this resource.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict means a state precondition was violated, e.g. the game is
	// already matched or the application has already been processed.
	ErrConflict = errors.New("conflict")

	// ErrDuplicate means the write would create a second row for a pair that
	// must be unique, e.g. applying twice to the same game.
	ErrDuplicate = errors.New("duplicate")

	// ErrValidation means the input is malformed or violates a domain rule
	// checked before any write, e.g. a past-dated game.
	ErrValidation = errors.New("validation failed")
)

// IsDomain reports whether err is one of the typed domain outcomes above.
// Anything else reaching a controller is treated as a storage failure: logged
// with context and surfaced to the client as a generic server error.
func IsDomain(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrValidation)
}
