package cuuid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compactid/cuuid"
)

func TestUnserialiseTruncated(t *testing.T) {
	_, _, err := cuuid.Unserialise([]byte{0x01})
	require.ErrorIs(t, err, cuuid.ErrTruncated)

	_, _, err = cuuid.Unserialise([]byte{0x01, 0x02, 0x03})
	require.ErrorIs(t, err, cuuid.ErrTruncated)
}

func TestUnserialiseBadTag(t *testing.T) {
	_, _, err := cuuid.Unserialise([]byte{0x00, 0x00})
	require.ErrorIs(t, err, cuuid.ErrBadTag)
}

func TestSerialiseManyUnserialiseMany(t *testing.T) {
	a, err := cuuid.Parse("230c0800-dc3c-11e7-b966-a3ab262e682b")
	require.NoError(t, err)
	b := cuuid.New()
	c, err := cuuid.Parse("5759b016-10c0-4526-a981-47d6d19f6fb4")
	require.NoError(t, err)

	in := []cuuid.UUID{a, b, c}
	blob := cuuid.SerialiseMany(in)
	out, err := cuuid.UnserialiseMany(blob)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestGeneratedUUIDsAreCompactByDefault(t *testing.T) {
	for i := 0; i < 100; i++ {
		u := cuuid.New()
		require.True(t, u.IsCompact())
		record := u.Serialise()
		require.LessOrEqual(t, len(record), 8)

		got, n, err := cuuid.Unserialise(record)
		require.NoError(t, err)
		require.Equal(t, len(record), n)
		require.Equal(t, u, got)
	}
}

func TestNewExpandedIsNotCompact(t *testing.T) {
	nonCompact := 0
	for i := 0; i < 50; i++ {
		u := cuuid.NewExpanded()
		if !u.IsCompact() {
			nonCompact++
		}
		got, n, err := cuuid.Unserialise(u.Serialise())
		require.NoError(t, err)
		require.Equal(t, len(u.Serialise()), n)
		require.Equal(t, u, got)
	}
	require.Greater(t, nonCompact, 0)
}

func TestFullFormRoundTrip(t *testing.T) {
	u := cuuid.NewV4()
	record := u.Serialise()
	require.Equal(t, 17, len(record))
	require.Equal(t, byte(0x01), record[0])

	got, n, err := cuuid.Unserialise(record)
	require.NoError(t, err)
	require.Equal(t, 17, n)
	require.Equal(t, u, got)
}

func TestRandomV1RoundTripFuzz(t *testing.T) {
	const trials = 100000
	for i := 0; i < trials; i++ {
		var u cuuid.UUID
		if i%2 == 0 {
			u = cuuid.New()
		} else {
			u = cuuid.NewExpanded()
		}

		record := u.Serialise()
		got, n, err := cuuid.Unserialise(record)
		require.NoError(t, err)
		require.Equal(t, len(record), n)
		require.Equal(t, u, got)
	}
}
