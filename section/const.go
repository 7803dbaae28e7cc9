package section

const (
	// OriginalLengthSize is the width of the original-length field in bytes.
	OriginalLengthSize = 8

	// FrequencyEntrySize is the width of one frequency-table entry in bytes.
	FrequencyEntrySize = 4

	// HeaderSize is the total fixed size of a container header in bytes.
	// The frequency table is written for all 256 symbols in value order,
	// regardless of how many are non-zero.
	HeaderSize = OriginalLengthSize + 256*FrequencyEntrySize
)
