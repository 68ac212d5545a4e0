package cuuid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compactid/cuuid"
)

func TestDecodeAcceptsAllTextualForms(t *testing.T) {
	const hexUUID = "5759b016-10c0-4526-a981-47d6d19f6fb4"

	plain, err := cuuid.Decode(hexUUID)
	require.NoError(t, err)

	braced, err := cuuid.Decode("{" + hexUUID + "}")
	require.NoError(t, err)
	require.Equal(t, plain, braced)

	urn, err := cuuid.Decode("urn:uuid:" + hexUUID)
	require.NoError(t, err)
	require.Equal(t, plain, urn)
}

func TestEncodeGUIDAndURNForms(t *testing.T) {
	blob, err := cuuid.Decode("230c0800-dc3c-11e7-b966-a3ab262e682b;f2238800-debf-11e7-bbf7-dffcee0c03ab")
	require.NoError(t, err)

	guid, err := cuuid.Encode(blob, cuuid.FormGUID)
	require.NoError(t, err)
	require.Equal(t, "{230c0800-dc3c-11e7-b966-a3ab262e682b;f2238800-debf-11e7-bbf7-dffcee0c03ab}", guid)

	urn, err := cuuid.Encode(blob, cuuid.FormURN)
	require.NoError(t, err)
	require.Equal(t, "urn:uuid:230c0800-dc3c-11e7-b966-a3ab262e682b;f2238800-debf-11e7-bbf7-dffcee0c03ab", urn)
}

func TestDecodeRejectsMalformedCompound(t *testing.T) {
	_, err := cuuid.Decode("not-a-uuid;also-not-one")
	require.ErrorIs(t, err, cuuid.ErrBadCompound)

	_, err = cuuid.Decode("")
	require.ErrorIs(t, err, cuuid.ErrBadCompound)
}

func TestDecodeDistinguishesBaseXFailureKinds(t *testing.T) {
	blob, err := cuuid.Decode("230c0800-dc3c-11e7-b966-a3ab262e682b")
	require.NoError(t, err)
	encoded, err := cuuid.Encode(blob, cuuid.FormEncoded)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "~"))

	corrupted := encoded[:len(encoded)-1] + "z"
	if corrupted != encoded {
		_, err := cuuid.Decode(corrupted)
		require.ErrorIs(t, err, cuuid.ErrBadChecksum)
	}

	_, err = cuuid.Decode("~\x01\x01\x01\x01\x01\x01")
	require.ErrorIs(t, err, cuuid.ErrBadCharacter)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, hexUUID := range []string{
		"5759b016-10c0-4526-a981-47d6d19f6fb4",
		"230c0800-dc3c-11e7-b966-a3ab262e682b",
		"60579016-dec5-11e7-b616-34363bc9ddd6",
	} {
		blob, err := cuuid.Decode(hexUUID)
		require.NoError(t, err)

		encoded, err := cuuid.Encode(blob, cuuid.FormEncoded)
		require.NoError(t, err)

		roundTripped, err := cuuid.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, blob, roundTripped)

		guid, err := cuuid.Encode(blob, cuuid.FormGUID)
		require.NoError(t, err)
		viaGUID, err := cuuid.Decode(guid)
		require.NoError(t, err)
		require.Equal(t, blob, viaGUID)
	}
}
