package fnv1a_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compactid/cuuid/internal/fnv1a"
)

func TestHashZeroIsOffsetBasis(t *testing.T) {
	require.Equal(t, uint64(0xcbf29ce484222325), fnv1a.Hash(0))
}

func TestHashIsDeterministic(t *testing.T) {
	require.Equal(t, fnv1a.Hash(123456789), fnv1a.Hash(123456789))
	require.NotEqual(t, fnv1a.Hash(1), fnv1a.Hash(2))
}

func TestXorFoldZero(t *testing.T) {
	require.Equal(t, uint64(0), fnv1a.XorFold(0, 7))
}

func TestXorFoldIsDeterministic(t *testing.T) {
	require.Equal(t, fnv1a.XorFold(0xdeadbeef, 7), fnv1a.XorFold(0xdeadbeef, 7))
}
