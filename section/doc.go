// Package section defines the fixed-size container header that precedes the
// packed bitstream in a huffzip container.
//
// Container layout:
//
//	[originalLength: 8 bytes][freq[0..255]: 256 × 4 bytes][packed code bits]
//
// The header persists the frequency table verbatim so the decoder can
// rebuild an identical coding tree; the tree itself is never serialized.
// All integers are stored in the host's native byte order, so containers do
// not transfer between machines of differing endianness.
//
// The format carries no magic number or version field. A header read from a
// foreign or corrupted file is indistinguishable from a valid one beyond its
// size, and decoding such input produces garbage rather than a detected
// error.
package section
