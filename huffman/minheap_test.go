package huffman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestHeap seeds a heap with one leaf per frequency, bulk-loaded.
func newTestHeap(freqs []uint64) (*Tree, *minHeap) {
	t := &Tree{root: nullNode}
	h := newMinHeap(t, len(freqs))

	for i, f := range freqs {
		t.nodes = append(t.nodes, node{
			freq:   f,
			left:   nullNode,
			right:  nullNode,
			symbol: byte(i),
		})
		h.items = append(h.items, int32(i))
	}
	h.build()

	return t, h
}

func TestMinHeap_BuildAndExtract(t *testing.T) {
	freqs := []uint64{9, 4, 7, 1, 12, 3, 5, 2, 8, 6}
	tree, h := newTestHeap(freqs)

	prev := uint64(0)
	for h.len() > 0 {
		idx := h.extractMin()
		f := tree.nodes[idx].freq
		require.GreaterOrEqual(t, f, prev, "extractMin returned frequencies out of order")
		prev = f
	}
}

func TestMinHeap_InsertThenExtract(t *testing.T) {
	tree := &Tree{root: nullNode}
	h := newMinHeap(tree, 8)

	for i, f := range []uint64{42, 7, 19, 1, 23, 3, 11, 5} {
		tree.nodes = append(tree.nodes, node{freq: f, left: nullNode, right: nullNode, symbol: byte(i)})
		h.insert(int32(i))
	}

	var got []uint64
	for h.len() > 0 {
		got = append(got, tree.nodes[h.extractMin()].freq)
	}

	require.Equal(t, []uint64{1, 3, 5, 7, 11, 19, 23, 42}, got)
}

func TestMinHeap_MinPropertyUnderInterleaving(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tree := &Tree{root: nullNode}
	h := newMinHeap(tree, 0)

	for round := 0; round < 500; round++ {
		if h.len() == 0 || rng.Intn(3) != 0 {
			tree.nodes = append(tree.nodes, node{
				freq: uint64(rng.Intn(1000)),
				left: nullNode, right: nullNode,
			})
			h.insert(int32(len(tree.nodes) - 1))

			continue
		}

		minFreq := tree.nodes[h.extractMin()].freq
		for _, idx := range h.items {
			require.LessOrEqual(t, minFreq, tree.nodes[idx].freq)
		}
	}
}

func TestMinHeap_EqualFrequencies(t *testing.T) {
	// Ties break arbitrarily; every element must still come out exactly once.
	_, h := newTestHeap([]uint64{5, 5, 5, 5, 5})

	seen := make(map[int32]bool)
	for h.len() > 0 {
		idx := h.extractMin()
		require.False(t, seen[idx])
		seen[idx] = true
	}
	require.Len(t, seen, 5)
}

func TestMinHeap_ExtractEmptyPanics(t *testing.T) {
	tree := &Tree{root: nullNode}
	h := newMinHeap(tree, 0)

	require.Panics(t, func() { h.extractMin() })
}
