// Package huffman implements the coding engine behind the huffzip container:
// frequency counting, Huffman tree construction, code derivation, and
// bit-level packing and unpacking.
//
// The engine is deliberately split along its data flow:
//
//   - CountFrequencies scans a byte stream into a FrequencyTable.
//   - BuildTree turns a FrequencyTable into a Tree via greedy merging of the
//     two lowest-frequency nodes on an array-backed min-heap.
//   - Tree.Codes derives one prefix-free Code per symbol by walking the tree.
//   - BitWriter packs code bits densely into an output stream; BitReader
//     feeds single bits back to Tree.DecodeSymbol during decoding.
//
// Tree nodes live in a flat arena addressed by index, so the whole tree is
// released as one allocation when the owning operation returns.
//
// The engine assumes well-formed in-memory inputs. Preconditions (such as
// never extracting from an empty heap) are asserted, not returned as errors;
// error returns are reserved for I/O on the underlying byte source or sink.
package huffman
