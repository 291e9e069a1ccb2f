// Package qrsymbol encodes messages into QR symbols (ISO/IEC 18004).
//
// A message is always encoded as a single byte mode segment, in the smallest
// version that holds it at the requested error correction level. The
// resulting Symbol can be queried module by module, or rendered as a 1 bit
// BMP, PNG, JPEG, SVG or PDF.
//
//	s, err := qrsymbol.New("https://example.org", qrsymbol.Medium)
//	if err != nil {
//		return err
//	}
//
//	bmp := s.BMPBase64()
package qrsymbol

import (
	"fmt"

	"github.com/RashadAnsari/qrsymbol/internal/bitset"
	"github.com/RashadAnsari/qrsymbol/internal/reedsolomon"
)

// EncodeRequest is the input of Encode.
type EncodeRequest struct {
	Message []byte

	// Level outside Low..Highest is treated as Highest.
	Level RecoveryLevel
}

// New encodes content at the given level.
func New(content string, level RecoveryLevel) (*Symbol, error) {
	return Encode(EncodeRequest{Message: []byte(content), Level: level})
}

// Encode builds the symbol for req. It allocates fresh state on every call
// and may be called concurrently.
func Encode(req EncodeRequest) (*Symbol, error) {
	level := req.Level
	if !level.valid() {
		level = Highest
	}

	version, err := selectVersion(len(req.Message), level)
	if err != nil {
		return nil, err
	}

	encoder, err := newDataEncoder(version, level)
	if err != nil {
		return nil, err
	}

	data, err := encoder.encode(req.Message)
	if err != nil {
		return nil, err
	}

	encoded, err := encodeBlocks(encoder, data)
	if err != nil {
		return nil, err
	}

	m := buildSymbolMatrix(version)

	if n := m.placeData(encoded); n != encoded.Len() {
		return nil, fmt.Errorf("BUG: placed %d of %d bits (version=%d)", n, encoded.Len(), version)
	}

	mask, penalty := selectMask(m, level)

	m.applyMask(mask)
	m.addFormatInfo(level, mask)

	return newSymbol(m, version, level, mask, penalty), nil
}

// encodeBlocks splits the data codewords into blocks, appends error
// correction to each, and interleaves the result.
func encodeBlocks(encoder *dataEncoder, data *bitset.Bitset) (*bitset.Bitset, error) {
	blocks, err := encoder.split(data.Bytes())
	if err != nil {
		return nil, err
	}

	numECBytes := encoder.block.ecCodewords

	// Apply error correction to each block.
	ec := make([][]byte, len(blocks))

	for i, b := range blocks {
		ec[i], err = reedsolomon.Encode(b, numECBytes)
		if err != nil {
			return nil, err
		}
	}

	result := interleave(blocks, ec)

	if n := encoder.version.codewordCapacity(); len(result) != n {
		return nil, fmt.Errorf("BUG: got %d codewords, version %d holds %d",
			len(result), encoder.version, n)
	}

	return bitset.FromBytes(result), nil
}

// interleave takes byte i of every data block in turn, then byte i of every
// error correction block. Shorter group 1 blocks are skipped once exhausted.
func interleave(data, ec [][]byte) []byte {
	var result []byte

	// Combine data blocks.
	for i, working := 0, true; working; i++ {
		working = false

		for _, b := range data {
			if i < len(b) {
				result = append(result, b[i])
				working = true
			}
		}
	}

	// Combine error correction blocks.
	for i, working := 0, true; working; i++ {
		working = false

		for _, b := range ec {
			if i < len(b) {
				result = append(result, b[i])
				working = true
			}
		}
	}

	return result
}
