package section

import (
	"fmt"
	"io"

	"github.com/arloliu/huffzip/endian"
	"github.com/arloliu/huffzip/errs"
	"github.com/arloliu/huffzip/huffman"
)

// Header is the fixed-size header section at the start of a container.
//
// It fully determines how the rest of the container is interpreted: an
// OriginalLength of zero means an empty payload with no bitstream, a
// single-symbol frequency table means the bitstream is skipped in favor of
// symbol repetition, and anything else is decoded by tree walking.
type Header struct {
	// OriginalLength is the size of the uncompressed payload in bytes. byte offset 0-7
	OriginalLength uint64
	// Freq is the occurrence count per byte symbol, in symbol-value order
	// 0..255. byte offset 8-1031
	Freq huffman.FrequencyTable
}

// NewHeader creates a Header for a payload of originalLength bytes with the
// given frequency table.
func NewHeader(originalLength uint64, freq *huffman.FrequencyTable) *Header {
	return &Header{
		OriginalLength: originalLength,
		Freq:           *freq,
	}
}

// Bytes serializes the Header into a HeaderSize byte slice in the host's
// native byte order.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := endian.GetNativeEngine()

	engine.PutUint64(b[0:OriginalLengthSize], h.OriginalLength)
	for i, count := range h.Freq {
		off := OriginalLengthSize + i*FrequencyEntrySize
		engine.PutUint32(b[off:off+FrequencyEntrySize], count)
	}

	return b
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is not HeaderSize bytes
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetNativeEngine()

	h.OriginalLength = engine.Uint64(data[0:OriginalLengthSize])
	for i := range h.Freq {
		off := OriginalLengthSize + i*FrequencyEntrySize
		h.Freq[i] = engine.Uint32(data[off : off+FrequencyEntrySize])
	}

	return nil
}

// Read reads and parses a Header from r. It must be called before any
// bitstream interpretation is attempted.
//
// Returns:
//   - Header: Parsed header struct
//   - error: errs.ErrTruncatedHeader if r ends before HeaderSize bytes
func Read(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, fmt.Errorf("%w: %w", errs.ErrTruncatedHeader, err)
	}

	var h Header
	if err := h.Parse(buf[:]); err != nil {
		return Header{}, err
	}

	return h, nil
}
