package huffman

import (
	"bufio"
	"io"

	"github.com/arloliu/huffzip/internal/pool"
)

// BitReader yields single bits from an underlying reader, consuming the
// most significant bit of each byte first.
type BitReader struct {
	r     *bufio.Reader
	cur   byte
	nbits uint8
}

// NewBitReader creates a BitReader on top of r. If r is not already
// buffered, it is wrapped in a bufio.Reader.
func NewBitReader(r io.Reader) *BitReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, pool.StreamBufferDefaultSize)
	}

	return &BitReader{r: br}
}

// ReadBit returns the next bit (0 or 1). It returns io.EOF once the
// underlying stream is exhausted.
func (br *BitReader) ReadBit() (byte, error) {
	if br.nbits == 0 {
		b, err := br.r.ReadByte()
		if err != nil {
			return 0, err
		}
		br.cur = b
		br.nbits = 8
	}

	br.nbits--

	return (br.cur >> br.nbits) & 1, nil
}
