package huffzip

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/huffzip/errs"
	"github.com/arloliu/huffzip/huffman"
	"github.com/arloliu/huffzip/section"
)

func roundTrip(t *testing.T, input []byte) []byte {
	t.Helper()

	packed, err := CompressBytes(input)
	require.NoError(t, err)

	restored, err := DecompressBytes(packed)
	require.NoError(t, err)
	require.Equal(t, input, restored, "round trip must be bit-for-bit identical")

	return packed
}

func TestRoundTrip(t *testing.T) {
	t.Run("Concrete scenario", func(t *testing.T) {
		// a:4 b:3 c:2 encodes to 14 bits → 2 bitstream bytes.
		packed := roundTrip(t, []byte("aaaabbbcc"))
		require.Len(t, packed, section.HeaderSize+2)
	})

	t.Run("Every byte value present", func(t *testing.T) {
		input := make([]byte, 256)
		for i := range input {
			input[i] = byte(i)
		}
		roundTrip(t, input)
	})

	t.Run("Random data", func(t *testing.T) {
		rng := rand.New(rand.NewSource(9))
		input := make([]byte, 8192)
		rng.Read(input)
		roundTrip(t, input)
	})

	t.Run("Skewed text", func(t *testing.T) {
		input := bytes.Repeat([]byte("abracadabra "), 1000)
		packed := roundTrip(t, input)
		// Entropy coding must beat fixed 8-bit codes on skewed input.
		require.Less(t, len(packed)-section.HeaderSize, len(input))
	})

	t.Run("Two distinct symbols", func(t *testing.T) {
		roundTrip(t, []byte("ababababab"))
	})
}

func TestRoundTrip_EmptyInput(t *testing.T) {
	packed := roundTrip(t, []byte{})
	require.Len(t, packed, section.HeaderSize, "empty input compresses to header only")

	h, err := section.Read(bytes.NewReader(packed))
	require.NoError(t, err)
	require.Zero(t, h.OriginalLength)
	require.Zero(t, h.Freq.Distinct())
}

func TestRoundTrip_SingleSymbol(t *testing.T) {
	// N occurrences of one byte pack into ceil(N/8) bitstream bytes.
	for _, n := range []int{1, 7, 8, 9, 100, 1000} {
		input := bytes.Repeat([]byte{'Q'}, n)
		packed := roundTrip(t, input)
		require.Len(t, packed, section.HeaderSize+(n+7)/8, "n=%d", n)
	}
}

func TestDecompress_Failures(t *testing.T) {
	t.Run("Truncated header", func(t *testing.T) {
		_, err := DecompressBytes(make([]byte, section.HeaderSize-10))
		require.ErrorIs(t, err, errs.ErrTruncatedHeader)
	})

	t.Run("Truncated bitstream", func(t *testing.T) {
		packed, err := CompressBytes(bytes.Repeat([]byte("abcd"), 100))
		require.NoError(t, err)

		_, err = DecompressBytes(packed[:len(packed)-1])
		require.ErrorIs(t, err, errs.ErrTruncatedBitstream)
	})

	t.Run("Length without symbols", func(t *testing.T) {
		var freq huffman.FrequencyTable
		header := section.NewHeader(5, &freq)

		_, err := DecompressBytes(header.Bytes())
		require.ErrorIs(t, err, errs.ErrNoSymbols)
	})
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.bin")
	packed := filepath.Join(dir, "input.bin.hz")
	restored := filepath.Join(dir, "restored.bin")

	rng := rand.New(rand.NewSource(21))
	data := make([]byte, 40000)
	for i := range data {
		// Skewed distribution so the container actually shrinks.
		data[i] = byte(rng.Intn(16))
	}
	require.NoError(t, os.WriteFile(input, data, 0o644))

	require.NoError(t, CompressFile(input, packed))
	require.NoError(t, DecompressFile(packed, restored))

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, data, got)

	info, err := os.Stat(packed)
	require.NoError(t, err)
	require.Less(t, info.Size(), int64(len(data)))
}

func TestFileOperations_OpenFailures(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist")
	out := filepath.Join(dir, "out")

	err := CompressFile(missing, out)
	require.Error(t, err)
	require.Contains(t, err.Error(), missing)

	err = DecompressFile(missing, out)
	require.Error(t, err)
	require.Contains(t, err.Error(), missing)

	// Destination directory that cannot be created.
	src := filepath.Join(dir, "src")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0o644))

	bad := filepath.Join(dir, "no-such-dir", "out")
	err = CompressFile(src, bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), bad)
}
