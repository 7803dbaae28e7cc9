// Package compress provides a pluggable codec surface for huffzip.
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// The primary implementation is HuffmanCodec, which wraps the huffzip
// container coding. NoOp, Zstd, S2, and LZ4 codecs sit behind the same
// interface so callers can compare or substitute general-purpose algorithms
// without changing their code; see examples/codec_compare.
//
// Use CreateCodec or GetCodec with a format.CompressionType to obtain a
// codec by identifier:
//
//	codec, err := compress.GetCodec(format.CompressionHuffman)
//	packed, err := codec.Compress(data)
//	restored, err := codec.Decompress(packed)
//
// All codecs are safe for concurrent use: they hold no per-call state beyond
// pooled scratch buffers.
package compress
