package compress

// ZstdCompressor provides Zstandard compression behind the Codec interface.
//
// Zstd trades speed for ratio relative to the entropy-only Huffman codec:
// it models repeated byte sequences as well as symbol frequencies, so on
// most real inputs it compresses tighter while remaining fast to decode.
// It is the benchmark to beat in examples/codec_compare.
//
// The implementation lives in zstd_pure.go (pure Go, klauspost/compress);
// an alternative cgo binding against libzstd is kept in zstd_cgo.go behind
// the nobuild tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
