package compress

import (
	"github.com/arloliu/huffzip"
)

// HuffmanCodec exposes huffzip's container coding through the Codec
// interface.
//
// Unlike the transparent codecs in this package, Compress always emits the
// fixed container header in front of the packed bits, so tiny inputs grow:
// the header alone is section.HeaderSize bytes. Decompress requires a
// container produced by this codec (or by huffzip.Compress) on the same
// host; there is no format signature to reject foreign input with.
type HuffmanCodec struct{}

var _ Codec = (*HuffmanCodec)(nil)

// NewHuffmanCodec creates a new Huffman container codec.
func NewHuffmanCodec() HuffmanCodec {
	return HuffmanCodec{}
}

// Compress encodes data into a huffzip container.
func (c HuffmanCodec) Compress(data []byte) ([]byte, error) {
	return huffzip.CompressBytes(data)
}

// Decompress reconstructs the original payload from a huffzip container.
func (c HuffmanCodec) Decompress(data []byte) ([]byte, error) {
	return huffzip.DecompressBytes(data)
}
