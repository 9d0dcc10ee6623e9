package xexstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	xexstore "github.com/vaultkit/xexstore"
	"github.com/vaultkit/xexstore/crypto/xex"
)

func TestSetTestMode_TogglesAndReverts(t *testing.T) {
	require.False(t, xexstore.InTestMode())

	revert := xexstore.SetTestMode()
	require.True(t, xexstore.InTestMode())

	revert()
	require.False(t, xexstore.InTestMode())
}

func TestSetTestMode_RepeatedEnableIsNoop(t *testing.T) {
	revert1 := xexstore.SetTestMode()
	revert2 := xexstore.SetTestMode()
	require.True(t, xexstore.InTestMode())

	revert2()
	require.True(t, xexstore.InTestMode(), "revert from a redundant SetTestMode call must not disable test mode")

	revert1()
	require.False(t, xexstore.InTestMode())
}

func TestSetTestMode_WiredIntoXEX(t *testing.T) {
	tweak, err := xex.NewAESPrimitive([16]byte{1})
	require.NoError(t, err)
	encrypt, err := xex.NewAESPrimitive([16]byte{2})
	require.NoError(t, err)

	var out, in [16]byte
	require.ErrorIs(t, xex.Encrypt(&out, &in, [16]byte{}, 0, tweak, encrypt), xex.ErrZeroSequenceDisallowed)

	revert := xexstore.SetTestMode()
	defer revert()

	require.NoError(t, xex.Encrypt(&out, &in, [16]byte{}, 0, tweak, encrypt))
}
