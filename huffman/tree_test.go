package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableOf(data []byte) *FrequencyTable {
	var ft FrequencyTable
	for _, c := range data {
		ft[c]++
	}

	return &ft
}

func TestCountFrequencies(t *testing.T) {
	t.Run("Basic counts", func(t *testing.T) {
		ft, total, err := CountFrequencies(strings.NewReader("aaaabbbcc"))

		require.NoError(t, err)
		require.Equal(t, uint64(9), total)
		require.Equal(t, uint32(4), ft['a'])
		require.Equal(t, uint32(3), ft['b'])
		require.Equal(t, uint32(2), ft['c'])
		require.Equal(t, 3, ft.Distinct())
		require.Equal(t, total, ft.Total(), "sum of non-zero entries must equal the byte count")
	})

	t.Run("Empty input", func(t *testing.T) {
		ft, total, err := CountFrequencies(bytes.NewReader(nil))

		require.NoError(t, err)
		require.Zero(t, total)
		require.Zero(t, ft.Distinct())
	})
}

func TestBuildTree(t *testing.T) {
	t.Run("Empty table yields no tree", func(t *testing.T) {
		var ft FrequencyTable
		require.Nil(t, BuildTree(&ft))
	})

	t.Run("Single symbol yields single leaf", func(t *testing.T) {
		tree := BuildTree(tableOf(bytes.Repeat([]byte{'x'}, 17)))

		require.NotNil(t, tree)
		require.Equal(t, 1, tree.LeafCount())

		sym, ok := tree.SingleSymbol()
		require.True(t, ok)
		require.Equal(t, byte('x'), sym)
	})

	t.Run("N leaves and N-1 internal nodes", func(t *testing.T) {
		tree := BuildTree(tableOf([]byte("abracadabra")))

		n := tree.LeafCount()
		require.Equal(t, 5, n) // a b r c d
		require.Len(t, tree.nodes, 2*n-1)

		_, ok := tree.SingleSymbol()
		require.False(t, ok)
	})

	t.Run("Root carries total frequency", func(t *testing.T) {
		tree := BuildTree(tableOf([]byte("aaaabbbcc")))
		require.Equal(t, uint64(9), tree.nodes[tree.root].freq)
	})

	t.Run("Strictly binary", func(t *testing.T) {
		tree := BuildTree(tableOf([]byte("the quick brown fox jumps over the lazy dog")))
		for _, n := range tree.nodes {
			oneChild := (n.left == nullNode) != (n.right == nullNode)
			require.False(t, oneChild, "node with exactly one child")
		}
	})
}

func TestTree_ConcreteScenario(t *testing.T) {
	// a:4 b:3 c:2 — a must get the 1-bit code, b and c depth-2 codes,
	// for a total of 14 encoded bits against 72 naive fixed-width bits.
	tree := BuildTree(tableOf([]byte("aaaabbbcc")))
	table := tree.Codes()

	require.EqualValues(t, 1, table['a'].Size)
	require.EqualValues(t, 2, table['b'].Size)
	require.EqualValues(t, 2, table['c'].Size)

	totalBits := 4*int(table['a'].Size) + 3*int(table['b'].Size) + 2*int(table['c'].Size)
	require.Equal(t, 14, totalBits)
	require.LessOrEqual(t, totalBits, 9*8)
}

func TestTree_EncodeDecodeSymbols(t *testing.T) {
	input := []byte("abracadabra, abracadabra!")
	tree := BuildTree(tableOf(input))
	table := tree.Codes()

	var packed bytes.Buffer
	bw := NewBitWriter(&packed)
	defer bw.Close()

	for _, c := range input {
		require.NoError(t, bw.WriteCode(table[c]))
	}
	require.NoError(t, bw.Flush())

	br := NewBitReader(bytes.NewReader(packed.Bytes()))
	for i, want := range input {
		sym, err := tree.DecodeSymbol(br)
		require.NoError(t, err)
		require.Equal(t, want, sym, "symbol %d", i)
	}
}
