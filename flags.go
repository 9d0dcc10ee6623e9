package xexstore

import (
	"sync/atomic"

	"github.com/vaultkit/xexstore/crypto/xex"
	"github.com/vaultkit/xexstore/log"
)

func init() {
	xex.RegisterTestModeFlag(InTestMode)
}

type atomicBool int32

func (b *atomicBool) isSet() bool { return atomic.LoadInt32((*int32)(b)) != 0 }
func (b *atomicBool) setTrue()    { atomic.StoreInt32((*int32)(b), 1) }
func (b *atomicBool) setFalse()   { atomic.StoreInt32((*int32)(b), 0) }

// -----------------------------------------------------------------------------

var testMode atomicBool

// InTestMode returns the test mode flag status.
//
// The XEX tweakable cipher in crypto/xex refuses a tweak sequence number of
// zero unless test mode is enabled: seq == 0 is a known XEX weakness and
// production code paths must never use it, but known-answer test vectors
// (e.g. NIST XTS conformance vectors) legitimately exercise it.
func InTestMode() bool {
	return testMode.isSet()
}

// SetTestMode enables test mode and returns a function to revert it.
//
// Calling this function multiple times while test mode is already enabled
// produces no effect beyond the first call.
func SetTestMode() (revert func()) {
	// Prevent multiple calls to indirectly disable the flag
	if testMode.isSet() {
		return func() {}
	}

	testMode.setTrue()
	log.Level(log.DebugLevel).Message("xexstore: test mode enabled, seq=0 tweaks are now accepted")

	return func() {
		testMode.setFalse()
		log.Level(log.DebugLevel).Message("xexstore: test mode disabled")
	}
}
