package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	result := CheckEndianness()

	// Verify the result matches the actual system endianness.
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(t, binary.BigEndian, result)
	case 0x02:
		require.Equal(t, binary.LittleEndian, result)
	default:
		require.Failf(t, "Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestNativeChecksAreInverse(t *testing.T) {
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
	require.True(t, IsNativeLittleEndian() || IsNativeBigEndian())
}

func TestGetNativeEngine(t *testing.T) {
	engine := GetNativeEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)

	if IsNativeLittleEndian() {
		require.Equal(t, GetLittleEndianEngine(), engine)
	} else {
		require.Equal(t, GetBigEndianEngine(), engine)
	}

	// The native engine must agree with an unsafe in-memory view, which is
	// what makes the container's "host byte order" contract hold.
	var testValue uint32 = 0x01020304
	raw := (*[4]byte)(unsafe.Pointer(&testValue))

	buf := make([]byte, 4)
	engine.PutUint32(buf, testValue)
	require.Equal(t, raw[:], buf)
	require.Equal(t, testValue, engine.Uint32(buf))
}

func TestEndianEngines(t *testing.T) {
	littleEngine := GetLittleEndianEngine()
	bigEngine := GetBigEndianEngine()

	var testUint64 uint64 = 0x0102030405060708
	littleBytes := make([]byte, 8)
	bigBytes := make([]byte, 8)

	littleEngine.PutUint64(littleBytes, testUint64)
	bigEngine.PutUint64(bigBytes, testUint64)

	require.NotEqual(t, littleBytes, bigBytes)
	require.Equal(t, testUint64, littleEngine.Uint64(littleBytes))
	require.Equal(t, testUint64, bigEngine.Uint64(bigBytes))

	require.Equal(t, byte(0x08), littleBytes[0], "little endian puts LSB first")
	require.Equal(t, byte(0x01), bigBytes[0], "big endian puts MSB first")
}
