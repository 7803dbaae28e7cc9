package huffman

// nullNode marks an absent child reference in the arena.
const nullNode int32 = -1

// node is one arena slot: a leaf (both children nullNode) carrying a symbol,
// or an internal node carrying the combined frequency of exactly two children.
type node struct {
	freq   uint64
	left   int32
	right  int32
	symbol byte
}

// Tree is a Huffman coding tree stored as a flat arena of nodes addressed by
// index. A tree over N distinct symbols holds N leaves and N-1 internal
// nodes; dropping the Tree releases all of them at once.
//
// A Tree is private to one compress or decompress invocation and is not safe
// for concurrent mutation, but all methods after construction are read-only.
type Tree struct {
	nodes []node
	root  int32
}

// BuildTree constructs a Huffman tree from the given frequency table using
// the canonical greedy algorithm: seed a min-heap with one leaf per non-zero
// symbol, then repeatedly extract the two lowest-frequency nodes and insert
// an internal node combining them, until a single root remains.
//
// The first node extracted becomes the left child, the second the right.
//
// Returns nil when the table contains no symbols (empty input): there is no
// tree to build. A table with a single symbol yields a tree whose root is
// that leaf.
func BuildTree(ft *FrequencyTable) *Tree {
	distinct := ft.Distinct()
	if distinct == 0 {
		return nil
	}

	t := &Tree{
		nodes: make([]node, 0, 2*distinct-1),
		root:  nullNode,
	}

	heap := newMinHeap(t, distinct)
	for sym, count := range ft {
		if count == 0 {
			continue
		}
		t.nodes = append(t.nodes, node{
			freq:   uint64(count),
			left:   nullNode,
			right:  nullNode,
			symbol: byte(sym),
		})
		heap.items = append(heap.items, int32(len(t.nodes)-1))
	}
	heap.build()

	for heap.len() > 1 {
		left := heap.extractMin()
		right := heap.extractMin()

		t.nodes = append(t.nodes, node{
			freq:  t.nodes[left].freq + t.nodes[right].freq,
			left:  left,
			right: right,
		})
		heap.insert(int32(len(t.nodes) - 1))
	}

	t.root = heap.extractMin()

	return t
}

// LeafCount returns the number of leaves, i.e. the number of distinct symbols.
func (t *Tree) LeafCount() int {
	return (len(t.nodes) + 1) / 2
}

// SingleSymbol reports whether the tree consists of a single leaf, and if so
// which symbol it carries. Such a tree cannot be walked bit by bit (its root
// has no left/right distinction), so callers must handle this case directly.
func (t *Tree) SingleSymbol() (byte, bool) {
	if t.isLeaf(t.root) {
		return t.nodes[t.root].symbol, true
	}

	return 0, false
}

// isLeaf reports whether the node at idx has no children. By construction a
// node has either zero or two children, never one.
func (t *Tree) isLeaf(idx int32) bool {
	return t.nodes[idx].left == nullNode && t.nodes[idx].right == nullNode
}

// DecodeSymbol walks the tree from the root, consuming one bit per edge from
// br: left on 0, right on 1, until a leaf is reached.
//
// Returns:
//   - byte: The decoded symbol
//   - error: Read error from the bit source, including io.EOF when the
//     stream ends mid-walk
func (t *Tree) DecodeSymbol(br *BitReader) (byte, error) {
	idx := t.root
	for !t.isLeaf(idx) {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}

		if bit == 0 {
			idx = t.nodes[idx].left
		} else {
			idx = t.nodes[idx].right
		}
	}

	return t.nodes[idx].symbol, nil
}
