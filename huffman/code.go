package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Code represents the bit sequence assigned to one symbol.
//
// The first (root-most) bit is the most significant of the Size valid bits
// in Bits. Size 0 means no code is assigned. A uint64 holds any code a
// 32-bit frequency table can produce: depths grow at Fibonacci rate in the
// worst case, which for 32-bit counts stays well below 64 bits.
type Code struct {
	Bits uint64
	Size uint8
}

// String returns the code as a quoted binary string, e.g. `"010"`.
func (c Code) String() string {
	if c.Size == 0 {
		return `""`
	}
	format := "%0" + strconv.FormatUint(uint64(c.Size), 10) + "b"

	return strconv.Quote(fmt.Sprintf(format, c.Bits))
}

var _ fmt.Stringer = Code{}

// IsPrefixOf reports whether c is a proper prefix of other.
func (c Code) IsPrefixOf(other Code) bool {
	if c.Size >= other.Size {
		return false
	}

	return other.Bits>>(other.Size-c.Size) == c.Bits
}

// CodeTable maps each symbol to its Code. Symbols absent from the input have
// a zero-Size entry.
type CodeTable [AlphabetSize]Code

// Codes derives the code table by depth-first traversal: descending a left
// edge appends a 0 bit, a right edge a 1 bit, and reaching a leaf records
// the accumulated bits as that symbol's code.
//
// A single-leaf tree gets the one-bit code "0" instead of the empty code a
// plain traversal would yield, so every occurrence still costs one bit.
//
// The traversal uses an explicit stack rather than recursion; tree depth is
// bounded by the alphabet size.
func (t *Tree) Codes() CodeTable {
	var table CodeTable

	if sym, ok := t.SingleSymbol(); ok {
		table[sym] = Code{Bits: 0, Size: 1}

		return table
	}

	type frame struct {
		idx  int32
		code Code
	}

	stack := make([]frame, 0, 64)
	stack = append(stack, frame{idx: t.root})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[f.idx]
		if n.left == nullNode && n.right == nullNode {
			table[n.symbol] = f.code

			continue
		}

		assert.Assertf(f.code.Size < 64, "code depth %d exceeds 64 bits", f.code.Size)

		stack = append(stack, frame{
			idx:  n.right,
			code: Code{Bits: f.code.Bits<<1 | 1, Size: f.code.Size + 1},
		})
		stack = append(stack, frame{
			idx:  n.left,
			code: Code{Bits: f.code.Bits << 1, Size: f.code.Size + 1},
		})
	}

	return table
}
