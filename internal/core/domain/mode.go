package domain

import "go.trai.ch/zerr"

// LockMode controls how strictly the application layer treats missing lock
// state. The codecs themselves always read an absent file as empty state.
type LockMode string

const (
	// LockModeDefault records locks when asked and tolerates missing state.
	LockModeDefault LockMode = "default"

	// LockModeStrict fails verification when lock state is missing.
	LockModeStrict LockMode = "strict"

	// LockModeLenient reports drift or missing state without failing.
	LockModeLenient LockMode = "lenient"
)

// ParseLockMode converts a settings string into a LockMode. An empty string
// selects LockModeDefault.
func ParseLockMode(s string) (LockMode, error) {
	switch LockMode(s) {
	case "":
		return LockModeDefault, nil
	case LockModeDefault, LockModeStrict, LockModeLenient:
		return LockMode(s), nil
	default:
		return "", zerr.With(ErrInvalidLockMode, "mode", s)
	}
}
