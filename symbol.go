package qrsymbol

import "strings"

// Symbol is a finished QR symbol. It is immutable and safe for concurrent
// use.
type Symbol struct {
	version Version
	level   RecoveryLevel
	mask    int
	penalty int

	// Width/height of the symbol in modules.
	size int

	// Value of module at y*size+x. True is dark.
	module []bool
}

func newSymbol(m *symbolMatrix, version Version, level RecoveryLevel, mask, penalty int) *Symbol {
	module := make([]bool, len(m.dark))
	copy(module, m.dark)

	return &Symbol{
		version: version,
		level:   level,
		mask:    mask,
		penalty: penalty,
		size:    m.size,
		module:  module,
	}
}

func (s *Symbol) Version() Version {
	return s.version
}

func (s *Symbol) Level() RecoveryLevel {
	return s.level
}

// Mask returns the data mask pattern, 0 to 7.
func (s *Symbol) Mask() int {
	return s.mask
}

// Penalty returns the mask penalty score of the symbol.
func (s *Symbol) Penalty() int {
	return s.penalty
}

// Size returns the width and height of the symbol in modules.
func (s *Symbol) Size() int {
	return s.size
}

// IsDark reports whether the module at (x, y) is dark. (0, 0) is the top
// left module. Coordinates outside the symbol are light.
func (s *Symbol) IsDark(x, y int) bool {
	if x < 0 || y < 0 || x >= s.size || y >= s.size {
		return false
	}

	return s.module[y*s.size+x]
}

// Bitmap returns a copy of the modules, indexed [y][x].
func (s *Symbol) Bitmap() [][]bool {
	bitmap := make([][]bool, s.size)

	for y := range bitmap {
		bitmap[y] = make([]bool, s.size)
		copy(bitmap[y], s.module[y*s.size:(y+1)*s.size])
	}

	return bitmap
}

// String returns a pictorial representation of the symbol, suitable for
// printing in a TTY with a dark background.
func (s *Symbol) String() string {
	var b strings.Builder

	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.module[y*s.size+x] {
				b.WriteString("  ")
			} else {
				// Unicode 'FULL BLOCK' (U+2588).
				b.WriteString("██")
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}
