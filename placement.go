package qrsymbol

import "github.com/RashadAnsari/qrsymbol/internal/bitset"

// placeData writes data into the non-functional modules in zigzag order and
// returns the number of bits placed.
//
// Columns are walked in pairs from the right edge, alternating upward and
// downward sweeps. The vertical timing pattern column is skipped. Modules
// left over once data runs out stay light.
func (m *symbolMatrix) placeData(data *bitset.Bitset) int {
	i := 0

	for right := m.size - 1; right >= 1; right -= 2 {
		if right == timingPatternIndex {
			right--
		}

		upward := (right+1)&2 == 0

		for vert := 0; vert < m.size; vert++ {
			y := vert
			if upward {
				y = m.size - 1 - vert
			}

			for j := 0; j < 2; j++ {
				x := right - j

				if m.isFunctional(x, y) || i >= data.Len() {
					continue
				}

				// i is in range, At cannot fail.
				v, _ := data.At(i)
				m.dark[y*m.size+x] = v

				i++
			}
		}
	}

	return i
}
