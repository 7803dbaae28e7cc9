// Package format defines shared type identifiers for the huffzip codec layer.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/huffzip/errs"
)

// CompressionType identifies a compression algorithm in the codec layer.
type CompressionType uint8

const (
	CompressionHuffman CompressionType = 0x1 // CompressionHuffman represents huffzip's Huffman container coding.
	CompressionNone    CompressionType = 0x2 // CompressionNone represents no compression.
	CompressionZstd    CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2      CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4     CompressionType = 0x5 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionHuffman:
		return "Huffman"
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-insensitive algorithm name to its
// CompressionType. It accepts the names produced by String.
//
// Returns:
//   - CompressionType: Parsed type on success
//   - error: Error naming the unrecognized input
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "huffman":
		return CompressionHuffman, nil
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownCompression, name)
	}
}
