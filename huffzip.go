// Package huffzip provides lossless byte-stream compression based on
// Huffman coding.
//
// Compression scans the input once to build a frequency table, derives a
// prefix-free code from a Huffman tree built over that table, then re-scans
// the input to emit a self-describing container: a fixed-size header
// (original length plus the full frequency table) followed by the packed
// code bits. Decompression rebuilds an identical tree from the header and
// walks it bit by bit to recover the original stream exactly.
//
// # Basic Usage
//
// File-to-file round trip:
//
//	if err := huffzip.CompressFile("input.txt", "input.txt.hz"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := huffzip.DecompressFile("input.txt.hz", "restored.txt"); err != nil {
//	    log.Fatal(err)
//	}
//
// In-memory:
//
//	packed, _ := huffzip.CompressBytes(data)
//	restored, _ := huffzip.DecompressBytes(packed)
//
// # Limitations
//
// The coder is not adaptive: the whole input is scanned before any code is
// chosen, so compression reads its source twice. Header integers use the
// host's native byte order; containers are not portable across machines of
// differing endianness. The format carries no signature, so decompressing a
// file that is not a huffzip container yields garbage or an I/O-shaped
// error rather than a clean diagnosis.
//
// # Package Structure
//
// The coding engine lives in the huffman package, the header layout in
// section, and a pluggable codec surface (Huffman next to Zstd, S2, LZ4) in
// compress. This package ties them together behind the common entry points.
package huffzip

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/huffzip/errs"
	"github.com/arloliu/huffzip/huffman"
	"github.com/arloliu/huffzip/internal/pool"
	"github.com/arloliu/huffzip/section"
)

// Compress reads the byte stream at r and writes a container to w.
//
// The input is scanned twice: once to count symbol frequencies, then again
// to emit code bits, with a seek back to the start in between. Everything
// the operation allocates (tree, heap, code table, buffers) is released
// before it returns, on error paths included.
//
// Parameters:
//   - r: Input byte stream; must support seeking back to the start
//   - w: Destination for the container
//
// Returns:
//   - error: Read, seek, or write error from the underlying streams
func Compress(r io.ReadSeeker, w io.Writer) error {
	freq, total, err := huffman.CountFrequencies(r)
	if err != nil {
		return fmt.Errorf("scan input: %w", err)
	}

	header := section.NewHeader(total, freq)
	if _, err := w.Write(header.Bytes()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	// Empty input: the header alone is the whole container.
	if total == 0 {
		return nil
	}

	tree := huffman.BuildTree(freq)
	table := tree.Codes()

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind input: %w", err)
	}

	bw := huffman.NewBitWriter(w)
	defer bw.Close()

	if err := encodeStream(r, bw, &table); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

// Decompress reads a container from r and writes the reconstructed byte
// stream to w.
//
// Behavior is undefined when the input is not a container produced by
// Compress on the same host: with no format signature, foreign input decodes
// to garbage or surfaces as a truncation error.
//
// Returns:
//   - error: errs.ErrTruncatedHeader, errs.ErrNoSymbols,
//     errs.ErrTruncatedBitstream, or a read/write error
func Decompress(r io.Reader, w io.Writer) error {
	header, err := section.Read(r)
	if err != nil {
		return err
	}

	if header.OriginalLength == 0 {
		return nil
	}

	tree := huffman.BuildTree(&header.Freq)
	if tree == nil {
		return fmt.Errorf("%w: header declares %d bytes", errs.ErrNoSymbols, header.OriginalLength)
	}

	out := bufio.NewWriterSize(w, pool.StreamBufferDefaultSize)

	// A single-leaf tree cannot be walked; the one symbol simply repeats.
	if sym, ok := tree.SingleSymbol(); ok {
		for i := uint64(0); i < header.OriginalLength; i++ {
			if err := out.WriteByte(sym); err != nil {
				return err
			}
		}

		return out.Flush()
	}

	br := huffman.NewBitReader(r)
	for produced := uint64(0); produced < header.OriginalLength; produced++ {
		sym, err := tree.DecodeSymbol(br)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("%w: %d of %d symbols decoded",
					errs.ErrTruncatedBitstream, produced, header.OriginalLength)
			}

			return err
		}

		if err := out.WriteByte(sym); err != nil {
			return err
		}
	}

	// Trailing pad bits in the final byte are discarded unconditionally.
	return out.Flush()
}

// CompressFile reads the file at inputPath and writes a container to
// outputPath. On failure no valid output content is guaranteed.
func CompressFile(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("cannot open input file %q for reading: %w", inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("cannot create output file %q: %w", outputPath, err)
	}

	if err := Compress(in, out); err != nil {
		out.Close()

		return fmt.Errorf("compress %q: %w", inputPath, err)
	}

	return out.Close()
}

// DecompressFile reads a container from inputPath and writes the
// reconstructed byte stream to outputPath. On failure no valid output
// content is guaranteed.
func DecompressFile(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("cannot open input file %q for reading: %w", inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("cannot create output file %q: %w", outputPath, err)
	}

	if err := Decompress(bufio.NewReaderSize(in, pool.StreamBufferDefaultSize), out); err != nil {
		out.Close()

		return fmt.Errorf("decompress %q: %w", inputPath, err)
	}

	return out.Close()
}

// CompressBytes compresses data into a container held in memory.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(section.HeaderSize + len(data)/2)

	if err := Compress(bytes.NewReader(data), &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DecompressBytes reconstructs the original byte stream from an in-memory
// container.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	if err := Decompress(bytes.NewReader(data), &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// encodeStream re-reads the input and writes the code for each byte in
// original stream order.
func encodeStream(r io.Reader, bw *huffman.BitWriter, table *huffman.CodeTable) error {
	bb := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(bb)
	bb.Grow(pool.StreamBufferDefaultSize)
	buf := bb.B[:cap(bb.B)]

	for {
		n, err := r.Read(buf)
		for _, c := range buf[:n] {
			if werr := bw.WriteCode(table[c]); werr != nil {
				return werr
			}
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
