// Command huffzip compresses and decompresses single files.
//
// Usage:
//
//	huffzip compress [-codec name] [-verify] <input> <output>
//	huffzip decompress [-codec name] <input> <output>
//
// The default codec is huffman (the huffzip container format). The other
// codecs (none, zstd, s2, lz4) write their algorithm's raw output with no
// container; decompressing requires passing the same -codec again.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/huffzip"
	"github.com/arloliu/huffzip/compress"
	"github.com/arloliu/huffzip/format"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "compress":
		err = runCompress(os.Args[2:])
	case "decompress":
		err = runDecompress(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "huffzip: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "huffzip: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  huffzip compress [-codec name] [-verify] <input> <output>")
	fmt.Fprintln(os.Stderr, "  huffzip decompress [-codec name] <input> <output>")
	fmt.Fprintln(os.Stderr, "Codecs: huffman (default), none, zstd, s2, lz4")
}

func runCompress(args []string) error {
	fs := flag.NewFlagSet("compress", flag.ExitOnError)
	codecName := fs.String("codec", "huffman", "compression codec: huffman, none, zstd, s2, lz4")
	verify := fs.Bool("verify", false, "decompress the output and check its digest against the input")
	_ = fs.Parse(args)

	if fs.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	input, output := fs.Arg(0), fs.Arg(1)

	codecType, err := format.ParseCompressionType(*codecName)
	if err != nil {
		return err
	}

	if codecType == format.CompressionHuffman {
		if err := huffzip.CompressFile(input, output); err != nil {
			return err
		}
	} else {
		if err := codecCompressFile(codecType, input, output); err != nil {
			return err
		}
	}

	if *verify {
		return verifyRoundTrip(codecType, input, output)
	}

	return nil
}

func runDecompress(args []string) error {
	fs := flag.NewFlagSet("decompress", flag.ExitOnError)
	codecName := fs.String("codec", "huffman", "compression codec: huffman, none, zstd, s2, lz4")
	_ = fs.Parse(args)

	if fs.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	input, output := fs.Arg(0), fs.Arg(1)

	codecType, err := format.ParseCompressionType(*codecName)
	if err != nil {
		return err
	}

	if codecType == format.CompressionHuffman {
		return huffzip.DecompressFile(input, output)
	}

	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("cannot open input file %q for reading: %w", input, err)
	}

	restored, err := codec.Decompress(data)
	if err != nil {
		return fmt.Errorf("decompress %q: %w", input, err)
	}

	if err := os.WriteFile(output, restored, 0o644); err != nil {
		return fmt.Errorf("cannot create output file %q: %w", output, err)
	}

	return nil
}

func codecCompressFile(codecType format.CompressionType, input, output string) error {
	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("cannot open input file %q for reading: %w", input, err)
	}

	packed, err := codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress %q: %w", input, err)
	}

	if err := os.WriteFile(output, packed, 0o644); err != nil {
		return fmt.Errorf("cannot create output file %q: %w", output, err)
	}

	return nil
}

// verifyRoundTrip decompresses the freshly written output and compares
// xxHash64 digests with the original input.
func verifyRoundTrip(codecType format.CompressionType, input, output string) error {
	want, err := fileDigest(input)
	if err != nil {
		return err
	}

	var got uint64
	if codecType == format.CompressionHuffman {
		in, err := os.Open(output)
		if err != nil {
			return fmt.Errorf("cannot open output file %q for reading: %w", output, err)
		}
		defer in.Close()

		digest := xxhash.New()
		if err := huffzip.Decompress(in, digest); err != nil {
			return fmt.Errorf("verify %q: %w", output, err)
		}
		got = digest.Sum64()
	} else {
		codec, err := compress.GetCodec(codecType)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(output)
		if err != nil {
			return fmt.Errorf("cannot open output file %q for reading: %w", output, err)
		}

		restored, err := codec.Decompress(data)
		if err != nil {
			return fmt.Errorf("verify %q: %w", output, err)
		}
		got = xxhash.Sum64(restored)
	}

	if got != want {
		return fmt.Errorf("verify %q: digest mismatch (got %016x, want %016x)", output, got, want)
	}

	return nil
}

func fileDigest(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("cannot open input file %q for reading: %w", path, err)
	}
	defer f.Close()

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, err
	}

	return digest.Sum64(), nil
}
