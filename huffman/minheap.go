package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// minHeap is an array-backed binary min-heap over tree arena indices, keyed
// by node frequency. Ties between equal frequencies are broken arbitrarily;
// any valid Huffman tree may result.
type minHeap struct {
	tree  *Tree
	items []int32
}

func newMinHeap(t *Tree, capacity int) *minHeap {
	return &minHeap{
		tree:  t,
		items: make([]int32, 0, capacity),
	}
}

func (h *minHeap) len() int {
	return len(h.items)
}

// key returns the frequency of the node at heap position i.
func (h *minHeap) key(i int) uint64 {
	return h.tree.nodes[h.items[i]].freq
}

// insert adds a node index, sifting the hole up while the parent key is larger.
func (h *minHeap) insert(idx int32) {
	freq := h.tree.nodes[idx].freq

	h.items = append(h.items, idx)
	i := len(h.items) - 1
	for i > 0 && freq < h.key((i-1)/2) {
		h.items[i] = h.items[(i-1)/2]
		i = (i - 1) / 2
	}
	h.items[i] = idx
}

// extractMin removes and returns the index of the frequency-minimum node.
//
// Calling extractMin on an empty heap is a caller bug, not a runtime
// condition, and is asserted.
func (h *minHeap) extractMin() int32 {
	assert.Assertf(len(h.items) > 0, "extractMin called on an empty heap")

	minIdx := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.minHeapify(0)
	}

	return minIdx
}

// build restores the heap property over an unordered items slice by sifting
// down from the last non-leaf position to the root. O(n).
func (h *minHeap) build() {
	for i := (len(h.items) - 2) / 2; i >= 0; i-- {
		h.minHeapify(i)
	}
}

// minHeapify sifts the element at position i down, swapping with the smaller
// child until both children are at least as large.
func (h *minHeap) minHeapify(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(h.items) && h.key(left) < h.key(smallest) {
			smallest = left
		}
		if right < len(h.items) && h.key(right) < h.key(smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}

		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
