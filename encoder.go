package qrsymbol

import (
	"fmt"

	"github.com/RashadAnsari/qrsymbol/internal/bitset"
)

// Abbreviated true/false.
const (
	b0 = false
	b1 = true
)

// Pad codewords 0b11101100 and 0b00010001.
var padCodewords = [2]byte{0xec, 0x11}

// dataEncoder produces the data codewords of one version and level. Input is
// always encoded as a single byte mode segment.
type dataEncoder struct {
	version Version
	level   RecoveryLevel
	block   capacityEntry

	// Mode indicator bit sequence.
	byteModeIndicator *bitset.Bitset

	// Character count length.
	numByteCharCountBits int

	numTerminatorBits int
}

func newDataEncoder(version Version, level RecoveryLevel) (*dataEncoder, error) {
	block, err := version.capacity(level)
	if err != nil {
		return nil, err
	}

	return &dataEncoder{
		version:              version,
		level:                level,
		block:                block,
		byteModeIndicator:    bitset.New(b0, b1, b0, b0),
		numByteCharCountBits: version.charCountBits(),
		numTerminatorBits:    4,
	}, nil
}

func (d *dataEncoder) numDataBits() int {
	return d.block.numDataCodewords() * 8
}

// encode returns the padded data codewords for data.
func (d *dataEncoder) encode(data []byte) (*bitset.Bitset, error) {
	if uint64(len(data)) >= 1<<uint(d.numByteCharCountBits) {
		return nil, fmt.Errorf("%w: %d bytes do not fit a %d bit count",
			ErrCapacityExceeded, len(data), d.numByteCharCountBits)
	}

	result := bitset.New()
	result.Append(d.byteModeIndicator)

	if err := result.AppendUint32(uint32(len(data)), d.numByteCharCountBits); err != nil {
		return nil, err
	}

	result.AppendBytes(data)
	result.AppendNumBools(d.numTerminatorBits, false)

	numDataBits := d.numDataBits()

	if result.Len() > numDataBits {
		return nil, fmt.Errorf("%w: %d bits, version %d-%s holds %d",
			ErrCapacityExceeded, result.Len(), d.version, d.level, numDataBits)
	}

	if err := d.addPadding(result, numDataBits); err != nil {
		return nil, err
	}

	return result, nil
}

func (d *dataEncoder) addPadding(data *bitset.Bitset, numDataBits int) error {
	// Pad to the nearest codeword boundary.
	data.PadToByte()

	// Insert pad codewords alternately.
	i := 0

	for numDataBits-data.Len() >= 8 {
		if err := data.AppendByte(padCodewords[i], 8); err != nil {
			return err
		}

		i = 1 - i // Alternate between 0 and 1.
	}

	if data.Len() != numDataBits {
		return fmt.Errorf("BUG: got len %d, expected %d", data.Len(), numDataBits)
	}

	return nil
}

// split divides the data codewords into group 1 blocks followed by group 2
// blocks.
func (d *dataEncoder) split(codewords []byte) ([][]byte, error) {
	if len(codewords) != d.block.numDataCodewords() {
		return nil, fmt.Errorf("BUG: got %d data codewords, expected %d",
			len(codewords), d.block.numDataCodewords())
	}

	blocks := make([][]byte, 0, d.block.numBlocks())

	start := 0

	for i := 0; i < d.block.blocks1; i++ {
		blocks = append(blocks, codewords[start:start+d.block.dataCodewords1])
		start += d.block.dataCodewords1
	}

	for i := 0; i < d.block.blocks2; i++ {
		blocks = append(blocks, codewords[start:start+d.block.dataCodewords2])
		start += d.block.dataCodewords2
	}

	return blocks, nil
}
