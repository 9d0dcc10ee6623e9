package keystate

import "sync"

var (
	defaultOnce  sync.Once
	defaultState *State
)

func instance() *State {
	defaultOnce.Do(func() {
		defaultState = New()
	})
	return defaultState
}

// Default returns the package-level default State backing SetKey/GetKey/
// ClearKey/IsKeyNonzero, so other packages (storage's static facade, the
// CLI) can wire themselves to the same process-wide key instead of
// constructing an independent State.
func Default() *State {
	return instance()
}

// SetKey installs a new master key on the package-level default State.
func SetKey(blob [KeySize]byte) {
	instance().SetKey(blob)
}

// GetKey reads the master key back from the package-level default State.
func GetKey() ([KeySize]byte, error) {
	return instance().GetKey()
}

// EncryptAndTweakKeys opens both halves of the package-level default
// State's master key for the duration of fn.
func EncryptAndTweakKeys(fn func(encryptKey, tweakKey [HalfKeySize]byte) error) error {
	return instance().EncryptAndTweakKeys(fn)
}

// ClearKey zeroizes the package-level default State's master key.
func ClearKey() {
	instance().ClearKey()
}

// IsKeyNonzero reports whether the package-level default State currently
// holds a nonzero master key.
func IsKeyNonzero() (bool, error) {
	return instance().IsKeyNonzero()
}
