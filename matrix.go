package qrsymbol

const (
	finderPatternSize    = 7
	alignmentPatternSize = 5
	timingPatternIndex   = 6
)

// symbolMatrix is the module grid under construction. Both planes are
// indexed by y*size+x. A functional module holds a function pattern or is
// reserved for one, and is never used for data or masked.
type symbolMatrix struct {
	size int

	dark       []bool
	functional []bool
}

func newSymbolMatrix(size int) *symbolMatrix {
	return &symbolMatrix{
		size:       size,
		dark:       make([]bool, size*size),
		functional: make([]bool, size*size),
	}
}

// buildSymbolMatrix places every function pattern of version v, and
// reserves the format information area and remainder modules.
func buildSymbolMatrix(v Version) *symbolMatrix {
	m := newSymbolMatrix(v.ModuleLength())

	m.addFinderPatterns()
	m.addTimingPatterns()
	m.addAlignmentPatterns(alignmentCenters[v])
	m.addVersionInfo(v)
	m.reserveFormatInfo()
	m.reserveRemainder(v.remainderBits())

	return m
}

func (m *symbolMatrix) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.size && y < m.size
}

func (m *symbolMatrix) get(x, y int) bool {
	return m.dark[y*m.size+x]
}

func (m *symbolMatrix) isFunctional(x, y int) bool {
	return m.functional[y*m.size+x]
}

// set sets a function module at (x, y).
func (m *symbolMatrix) set(x, y int, v bool) {
	m.dark[y*m.size+x] = v
	m.functional[y*m.size+x] = true
}

// reserve marks the w*h rectangle at (x, y) as light function modules.
// Parts outside the grid are ignored.
func (m *symbolMatrix) reserve(x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if m.inside(i, j) {
				m.set(i, j, false)
			}
		}
	}
}

// fillRings draws an n*n square at (x, y): a dark border, a light ring, and
// a dark core. It draws both finder (n=7) and alignment (n=5) patterns.
func (m *symbolMatrix) fillRings(x, y, n int) {
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			light := ((j == 1 || j == n-2) && i > 0 && i < n-1) ||
				((i == 1 || i == n-2) && j > 0 && j < n-1)

			m.set(x+i, y+j, !light)
		}
	}
}

func (m *symbolMatrix) addFinderPatterns() {
	fpSize := finderPatternSize
	last := m.size - fpSize

	// Separators first: the 8*8 light area around each finder pattern.
	m.reserve(0, 0, fpSize+1, fpSize+1)
	m.reserve(last-1, 0, fpSize+1, fpSize+1)
	m.reserve(0, last-1, fpSize+1, fpSize+1)

	// Top left, top right, bottom left.
	m.fillRings(0, 0, fpSize)
	m.fillRings(last, 0, fpSize)
	m.fillRings(0, last, fpSize)
}

func (m *symbolMatrix) addTimingPatterns() {
	for i := finderPatternSize + 1; i < m.size-finderPatternSize-1; i++ {
		value := i%2 == 0

		m.set(i, timingPatternIndex, value)
		m.set(timingPatternIndex, i, value)
	}
}

func (m *symbolMatrix) addAlignmentPatterns(centers []int) {
	if len(centers) == 0 {
		return
	}

	first, last := centers[0], centers[len(centers)-1]

	for _, x := range centers {
		for _, y := range centers {
			// The three corners already hold finder patterns.
			if (x == first && y == first) || (x == first && y == last) || (x == last && y == first) {
				continue
			}

			m.fillRings(x-2, y-2, alignmentPatternSize)
		}
	}
}

// addVersionInfo writes the two 6*3 version information blocks for versions
// 7 and up. Bit i sits at (i/3, size-11+i%3) and its transpose.
func (m *symbolMatrix) addVersionInfo(v Version) {
	if v < 7 {
		return
	}

	bits := versionInfo[v]

	for i := 0; i < 18; i++ {
		value := (bits>>uint(i))&1 == 1

		a := m.size - 11 + i%3
		b := i / 3

		m.set(a, b, value)
		m.set(b, a, value)
	}
}

// reserveFormatInfo reserves both copies of the format information and sets
// the dark module.
func (m *symbolMatrix) reserveFormatInfo() {
	for _, positions := range formatInfoPositions(m.size) {
		for _, p := range positions {
			m.set(p[0], p[1], false)
		}
	}

	m.set(8, m.size-8, true)
}

// reserveRemainder reserves the modules the zigzag visits last, which carry
// no codeword bits. From version 7 on these fall inside version information
// and are left untouched.
func (m *symbolMatrix) reserveRemainder(n int) {
	y := m.size - 9

	var modules [][2]int

	switch n {
	case 7:
		modules = append(modules, [2]int{0, y - 3}, [2]int{0, y - 2}, [2]int{1, y - 2})
		fallthrough
	case 4:
		modules = append(modules, [2]int{1, y - 1})
		fallthrough
	case 3:
		modules = append(modules, [2]int{0, y}, [2]int{1, y}, [2]int{0, y - 1})
	}

	for _, p := range modules {
		if !m.isFunctional(p[0], p[1]) {
			m.set(p[0], p[1], false)
		}
	}
}

func (m *symbolMatrix) clone() *symbolMatrix {
	c := &symbolMatrix{
		size:       m.size,
		dark:       make([]bool, len(m.dark)),
		functional: make([]bool, len(m.functional)),
	}

	copy(c.dark, m.dark)
	copy(c.functional, m.functional)

	return c
}

func (m *symbolMatrix) numFunctionalModules() int {
	n := 0

	for _, f := range m.functional {
		if f {
			n++
		}
	}

	return n
}
