package qrsymbol

// Version is a QR symbol version, 1 to 40.
type Version int

const (
	MinVersion Version = 1
	MaxVersion Version = 40
)

// capacityEntry describes the block structure of one version and level.
// Group 1 has blocks1 blocks of dataCodewords1 bytes and group 2 has blocks2
// blocks of dataCodewords2 bytes. Every block carries ecCodewords error
// correction bytes.
type capacityEntry struct {
	blocks1        int
	blocks2        int
	dataCodewords1 int
	dataCodewords2 int
	ecCodewords    int

	// Carried over from the reference tables, not used for encoding.
	codewordHint int
}

func (e capacityEntry) numBlocks() int {
	return e.blocks1 + e.blocks2
}

func (e capacityEntry) numDataCodewords() int {
	return e.blocks1*e.dataCodewords1 + e.blocks2*e.dataCodewords2
}

func (e capacityEntry) numCodewords() int {
	return e.numDataCodewords() + e.numBlocks()*e.ecCodewords
}

func (v Version) valid() bool {
	return v >= MinVersion && v <= MaxVersion
}

// ModuleLength returns the width and height of the symbol in modules.
func (v Version) ModuleLength() int {
	return int(v-1)*4 + 21
}

func (v Version) capacity(level RecoveryLevel) (capacityEntry, error) {
	if !v.valid() || !level.valid() {
		return capacityEntry{}, &CapacityLookupError{Version: v, Level: level}
	}

	return capacityTable[v][level], nil
}

// DataCodewords returns the number of data codewords, or 0 for an unknown
// version or level.
func (v Version) DataCodewords(level RecoveryLevel) int {
	e, err := v.capacity(level)
	if err != nil {
		return 0
	}

	return e.numDataCodewords()
}

// ByteCapacity returns the longest message in bytes that fits the version at
// the given level in byte mode.
func (v Version) ByteCapacity(level RecoveryLevel) int {
	n := v.DataCodewords(level)*8 - v.overheadBits()
	if n < 0 {
		return 0
	}

	return n / 8
}

// charCountBits is the width of the byte mode character count indicator.
func (v Version) charCountBits() int {
	if v <= 9 {
		return 8
	}

	return 16
}

// overheadBits counts the mode indicator, character count and terminator.
func (v Version) overheadBits() int {
	return 4 + v.charCountBits() + 4
}

func (v Version) remainderBits() int {
	switch {
	case v >= 2 && v <= 6:
		return 7
	case v >= 14 && v <= 20, v >= 28 && v <= 34:
		return 3
	case v >= 21 && v <= 27:
		return 4
	default:
		return 0
	}
}

// dataModules is the number of modules left for codewords and remainder bits
// once function patterns, format and version information are placed.
func (v Version) dataModules() int {
	size := v.ModuleLength()

	reserved := 31
	if v >= 7 {
		reserved = 67
	}

	return size*size - functionModules[v] - reserved
}

// codewordCapacity is the total number of codewords a version holds.
func (v Version) codewordCapacity() int {
	return (v.dataModules() - v.remainderBits()) / 8
}

// selectVersion returns the smallest version holding numBytes at level.
func selectVersion(numBytes int, level RecoveryLevel) (Version, error) {
	for v := MinVersion; v <= MaxVersion; v++ {
		if v.ByteCapacity(level) >= numBytes {
			return v, nil
		}
	}

	return 0, ErrMessageTooLong
}
