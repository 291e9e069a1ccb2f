package qrsymbol

const numMasks = 8

// Constants used to weight penalty calculations.
const (
	penaltyWeightRun     = 3
	penaltyWeightBlock   = 3
	penaltyWeightFinder  = 40
	penaltyWeightBalance = 10
)

// maxBlockSide bounds both sides of the uniform blocks scored by
// penaltyBlocks.
const maxBlockSide = 5

// maskPatterns are the eight data mask conditions. A module at row i and
// column j is inverted when the condition holds.
var maskPatterns = [numMasks]func(i, j int) bool{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return (i*j)%2+(i*j)%3 == 0 },
	func(i, j int) bool { return ((i*j)%2+(i*j)%3)%2 == 0 },
	func(i, j int) bool { return ((i*j)%3+(i+j)%2)%2 == 0 },
}

// applyMask inverts every non-functional module selected by the mask.
func (m *symbolMatrix) applyMask(mask int) {
	cond := maskPatterns[mask]

	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			k := y*m.size + x

			if !m.functional[k] && cond(y, x) {
				m.dark[k] = !m.dark[k]
			}
		}
	}
}

// selectMask scores every mask against the placed data, with that mask's
// format information in place, and returns the lowest scoring one. Ties go to
// the lower mask number. m is not modified.
func selectMask(m *symbolMatrix, level RecoveryLevel) (mask int, penalty int) {
	for candidate := 0; candidate < numMasks; candidate++ {
		c := m.clone()
		c.applyMask(candidate)
		c.addFormatInfo(level, candidate)

		p := c.penaltyScore()

		if candidate == 0 || p < penalty {
			mask = candidate
			penalty = p
		}
	}

	return mask, penalty
}

// penaltyScore returns the sum of the four penalty rules.
func (m *symbolMatrix) penaltyScore() int {
	return m.penaltyRuns() + m.penaltyFinderLike() + m.penaltyBalance() + m.penaltyBlocks()
}

// penaltyRuns scores runs of five or more same coloured modules in each row
// and column. A run of n modules scores n-2.
func (m *symbolMatrix) penaltyRuns() int {
	penalty := 0

	for a := 0; a < m.size; a++ {
		rowRun, colRun := 1, 1

		for b := 1; b <= m.size; b++ {
			if b < m.size && m.get(b, a) == m.get(b-1, a) {
				rowRun++
			} else {
				if rowRun >= 5 {
					penalty += penaltyWeightRun + rowRun - 5
				}

				rowRun = 1
			}

			if b < m.size && m.get(a, b) == m.get(a, b-1) {
				colRun++
			} else {
				if colRun >= 5 {
					penalty += penaltyWeightRun + colRun - 5
				}

				colRun = 1
			}
		}
	}

	return penalty
}

// finderLike is dark, light, dark, dark, dark, light, dark.
var finderLike = [7]bool{b1, b0, b1, b1, b1, b0, b1}

// penaltyFinderLike scores every horizontal and vertical occurrence of the
// 1:1:3:1:1 finder pattern.
func (m *symbolMatrix) penaltyFinderLike() int {
	penalty := 0

	for a := 0; a < m.size; a++ {
		for b := 0; b+len(finderLike) <= m.size; b++ {
			row, col := true, true

			for k, v := range finderLike {
				row = row && m.get(b+k, a) == v
				col = col && m.get(a, b+k) == v
			}

			if row {
				penalty += penaltyWeightFinder
			}

			if col {
				penalty += penaltyWeightFinder
			}
		}
	}

	return penalty
}

// penaltyBalance scores the distance of the dark module ratio from 50%, in
// steps of 5%.
func (m *symbolMatrix) penaltyBalance() int {
	numModules := m.size * m.size
	numDarkModules := 0

	for _, v := range m.dark {
		if v {
			numDarkModules++
		}
	}

	deviation := 100*numDarkModules - 50*numModules
	if deviation < 0 {
		deviation = -deviation
	}

	// ceil(|percent - 50| / 5) in integers.
	steps := (deviation + 5*numModules - 1) / (5 * numModules)

	return penaltyWeightBalance * steps
}

// penaltyBlocks scores every uniform block of width and height between 2 and
// maxBlockSide. An m*n block scores (m-1)*(n-1)*3, and overlapping blocks are
// all counted.
func (m *symbolMatrix) penaltyBlocks() int {
	size := m.size

	// runs[k] is the length of the same coloured run starting at k and going
	// right, capped at maxBlockSide.
	runs := make([]int, size*size)

	for y := 0; y < size; y++ {
		for x := size - 1; x >= 0; x-- {
			k := y*size + x
			runs[k] = 1

			if x+1 < size && m.dark[k+1] == m.dark[k] {
				runs[k] = min(runs[k+1]+1, maxBlockSide)
			}
		}
	}

	penalty := 0

	for y := 0; y+1 < size; y++ {
		for x := 0; x+1 < size; x++ {
			k := y*size + x
			colour := m.dark[k]
			width := runs[k]

			for h := 2; h <= maxBlockSide && y+h <= size && width >= 2; h++ {
				below := (y+h-1)*size + x
				if m.dark[below] != colour {
					break
				}

				if runs[below] < width {
					width = runs[below]
				}

				for w := 2; w <= width; w++ {
					penalty += (w - 1) * (h - 1) * penaltyWeightBlock
				}
			}
		}
	}

	return penalty
}
