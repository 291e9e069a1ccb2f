package qrsymbol

const (
	formatInfoGenerator = 0x537
	formatInfoMask      = 0x5412
	numFormatInfoBits   = 15
)

// formatInfo returns the masked BCH(15,5) format information for a level and
// mask pattern.
func formatInfo(level RecoveryLevel, mask int) uint32 {
	payload := level.formatBits()<<3 | uint32(mask&0x7)

	return (payload<<10 | bchRemainder(payload<<10, formatInfoGenerator, 10)) ^ formatInfoMask
}

// bchRemainder reduces value modulo generator, a polynomial of the given
// degree over GF(2).
func bchRemainder(value, generator uint32, degree int) uint32 {
	for bit := 31; bit >= degree; bit-- {
		if value&(1<<uint(bit)) != 0 {
			value ^= generator << uint(bit-degree)
		}
	}

	return value
}

// formatInfoPositions returns the two copies of the format information
// placement, as (x, y) pairs. Element i of each copy holds bit i, counting
// from the least significant bit.
func formatInfoPositions(size int) [2][numFormatInfoBits][2]int {
	var p [2][numFormatInfoBits][2]int

	// Around the top left finder pattern, skipping the timing pattern.
	for i := 0; i <= 5; i++ {
		p[0][i] = [2]int{8, i}
	}

	p[0][6] = [2]int{8, 7}
	p[0][7] = [2]int{8, 8}
	p[0][8] = [2]int{7, 8}

	for i := 9; i < numFormatInfoBits; i++ {
		p[0][i] = [2]int{14 - i, 8}
	}

	// Split between the top right and bottom left finder patterns.
	for i := 0; i < 8; i++ {
		p[1][i] = [2]int{size - 1 - i, 8}
	}

	for i := 8; i < numFormatInfoBits; i++ {
		p[1][i] = [2]int{8, size - numFormatInfoBits + i}
	}

	return p
}

// addFormatInfo writes both copies of the format information and the dark
// module.
func (m *symbolMatrix) addFormatInfo(level RecoveryLevel, mask int) {
	bits := formatInfo(level, mask)

	for _, positions := range formatInfoPositions(m.size) {
		for i, p := range positions {
			m.set(p[0], p[1], (bits>>uint(i))&1 == 1)
		}
	}

	m.set(8, m.size-8, true)
}
