package huffman

import (
	"io"

	"github.com/arloliu/huffzip/internal/pool"
)

// BitWriter packs code bits densely into an underlying writer.
//
// Bits accumulate most-significant-bit-first into an 8-bit accumulator;
// each full accumulator is appended to a pooled buffer that is flushed to
// the writer in blocks. Flush pads a trailing partial byte with low-order
// zero bits, so it must be called exactly once, after all codes are written.
type BitWriter struct {
	w     io.Writer
	buf   *pool.ByteBuffer
	acc   byte
	nbits uint8
}

// NewBitWriter creates a BitWriter on top of w. The caller must call Flush
// when done writing and Close to release the internal buffer.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{
		w:   w,
		buf: pool.GetStreamBuffer(),
	}
}

// WriteCode appends the Size bits of c, most significant first.
func (bw *BitWriter) WriteCode(c Code) error {
	for i := int(c.Size) - 1; i >= 0; i-- {
		bw.acc = bw.acc<<1 | byte((c.Bits>>uint(i))&1)
		bw.nbits++
		if bw.nbits < 8 {
			continue
		}

		bw.buf.B = append(bw.buf.B, bw.acc)
		bw.acc = 0
		bw.nbits = 0

		if bw.buf.Len() >= pool.StreamBufferDefaultSize {
			if err := bw.flushBuffer(); err != nil {
				return err
			}
		}
	}

	return nil
}

// Flush left-aligns any pending partial byte, padding the low-order bits
// with zeros, and writes everything buffered to the underlying writer.
//
// No end-of-stream marker is emitted; the container's original-length field
// is what stops the decoder from reading pad bits as data.
func (bw *BitWriter) Flush() error {
	if bw.nbits > 0 {
		bw.buf.B = append(bw.buf.B, bw.acc<<(8-bw.nbits))
		bw.acc = 0
		bw.nbits = 0
	}

	return bw.flushBuffer()
}

// Close returns the internal buffer to the pool. It does not flush; call
// Flush first on success paths. Close is safe to call exactly once and is
// intended for defer.
func (bw *BitWriter) Close() {
	if bw.buf != nil {
		pool.PutStreamBuffer(bw.buf)
		bw.buf = nil
	}
}

func (bw *BitWriter) flushBuffer() error {
	if bw.buf.Len() == 0 {
		return nil
	}

	_, err := bw.buf.WriteTo(bw.w)
	bw.buf.Reset()

	return err
}
