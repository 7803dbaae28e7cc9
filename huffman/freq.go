package huffman

import (
	"io"

	"github.com/arloliu/huffzip/internal/pool"
)

// AlphabetSize is the number of distinct byte symbols.
const AlphabetSize = 256

// FrequencyTable maps each byte symbol to its occurrence count.
// A zero entry means the symbol is absent from the input.
//
// Counts are 32-bit to match the on-disk header layout; a single symbol
// occurring more than 4Gi times wraps, which is outside the supported
// input sizes.
type FrequencyTable [AlphabetSize]uint32

// Total returns the sum of all occurrence counts, i.e. the number of input
// bytes the table was built from.
func (ft *FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range ft {
		total += uint64(count)
	}

	return total
}

// Distinct returns the number of symbols with a non-zero count.
func (ft *FrequencyTable) Distinct() int {
	distinct := 0
	for _, count := range ft {
		if count > 0 {
			distinct++
		}
	}

	return distinct
}

// CountFrequencies scans r to the end and tallies every byte value.
//
// Returns:
//   - *FrequencyTable: Occurrence count per symbol
//   - uint64: Total number of bytes scanned
//   - error: Read error from r, if any
func CountFrequencies(r io.Reader) (*FrequencyTable, uint64, error) {
	var ft FrequencyTable
	var total uint64

	bb := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(bb)
	bb.Grow(pool.StreamBufferDefaultSize)
	buf := bb.B[:cap(bb.B)]

	for {
		n, err := r.Read(buf)
		for _, c := range buf[:n] {
			ft[c]++
		}
		total += uint64(n)

		if err == io.EOF {
			return &ft, total, nil
		}
		if err != nil {
			return nil, 0, err
		}
	}
}
