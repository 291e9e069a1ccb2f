package qrsymbol

import "testing"

var finderRows = []string{
	"#######.",
	"#.....#.",
	"#.###.#.",
	"#.###.#.",
	"#.###.#.",
	"#.....#.",
	"#######.",
	"........",
}

// checkFinder checks the finder pattern and separator whose 8x8 area, read
// with the separator on the outside, starts at (x, y) and advances by dx, dy.
func checkFinder(t *testing.T, m *symbolMatrix, x, y, dx, dy int) {
	t.Helper()

	for j, row := range finderRows {
		for i, c := range row {
			px, py := x+i*dx, y+j*dy

			if !m.isFunctional(px, py) {
				t.Fatalf("size %d: finder module (%d, %d) not functional", m.size, px, py)
			}

			if m.get(px, py) != (c == '#') {
				t.Fatalf("size %d: finder module (%d, %d) = %v", m.size, px, py, m.get(px, py))
			}
		}
	}
}

// Alignment patterns never overwrite finder patterns or separators.
func TestFinderPatterns(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		m := buildSymbolMatrix(v)
		last := m.size - 1

		checkFinder(t, m, 0, 0, 1, 1)
		checkFinder(t, m, last, 0, -1, 1)
		checkFinder(t, m, 0, last, 1, -1)
	}
}

func TestTimingPatterns(t *testing.T) {
	for _, v := range []Version{1, 2, 7, 40} {
		m := buildSymbolMatrix(v)

		for i := 8; i < m.size-8; i++ {
			want := i%2 == 0

			if m.get(i, 6) != want || m.get(6, i) != want {
				t.Errorf("version %d: timing module %d = %v/%v, want %v",
					v, i, m.get(i, 6), m.get(6, i), want)
			}
		}
	}
}

func TestAlignmentPatterns(t *testing.T) {
	// Version 7 centers: 6, 22, 38. (6,6), (6,38) and (38,6) are finders.
	m := buildSymbolMatrix(7)

	want := []string{
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	}

	for _, c := range [][2]int{{22, 6}, {6, 22}, {22, 22}, {38, 22}, {22, 38}, {38, 38}} {
		for j, row := range want {
			for i, ch := range row {
				x, y := c[0]-2+i, c[1]-2+j

				if !m.isFunctional(x, y) || m.get(x, y) != (ch == '#') {
					t.Errorf("alignment at %v: module (%d, %d) = %v", c, x, y, m.get(x, y))
				}
			}
		}
	}

	// Nothing drawn for version 1.
	m = buildSymbolMatrix(1)
	if m.isFunctional(14, 14) {
		t.Error("version 1 has an alignment pattern")
	}
}

func TestVersionInfoPlacement(t *testing.T) {
	// Versions 2-6 reserve remainder modules in the same area, but never
	// darken them.
	for v := MinVersion; v < 7; v++ {
		m := buildSymbolMatrix(v)

		for i := 0; i < 18; i++ {
			a, b := m.size-11+i%3, i/3

			if m.get(a, b) || m.get(b, a) {
				t.Errorf("version %d: version information module %d is dark", v, i)
			}
		}
	}

	for _, v := range []Version{7, 21, 40} {
		m := buildSymbolMatrix(v)

		var top, left uint32

		for i := 0; i < 18; i++ {
			a, b := m.size-11+i%3, i/3

			if m.get(a, b) {
				top |= 1 << uint(i)
			}

			if m.get(b, a) {
				left |= 1 << uint(i)
			}
		}

		if top != versionInfo[v] || left != versionInfo[v] {
			t.Errorf("version %d: read %#05x and %#05x, want %#05x", v, top, left, versionInfo[v])
		}
	}

	if versionInfo[7] != 0x07c94 {
		t.Errorf("versionInfo[7] = %#05x, want 0x07c94", versionInfo[7])
	}
}

func TestFunctionalModuleCount(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		m := buildSymbolMatrix(v)

		reserved := 31
		if v >= 7 {
			reserved += 36
		} else if v >= 2 {
			reserved += v.remainderBits()
		}

		if got, want := m.numFunctionalModules(), functionModules[v]+reserved; got != want {
			t.Errorf("version %d: %d functional modules, want %d", v, got, want)
		}
	}
}

func TestDarkModule(t *testing.T) {
	for _, v := range []Version{1, 10, 40} {
		m := buildSymbolMatrix(v)

		if !m.isFunctional(8, m.size-8) || !m.get(8, m.size-8) {
			t.Errorf("version %d: dark module not set", v)
		}
	}
}

func TestFormatInfoReserved(t *testing.T) {
	for _, v := range []Version{1, 2, 7, 40} {
		m := buildSymbolMatrix(v)

		for n, positions := range formatInfoPositions(m.size) {
			for i, p := range positions {
				if !m.isFunctional(p[0], p[1]) || m.get(p[0], p[1]) {
					t.Errorf("version %d: format copy %d bit %d at %v not reserved light", v, n, i, p)
				}
			}
		}
	}
}

func TestCloneDoesNotShareModules(t *testing.T) {
	m := buildSymbolMatrix(1)
	c := m.clone()

	x, y := m.size-1, m.size-1
	if m.isFunctional(x, y) {
		t.Fatalf("module (%d, %d) is functional", x, y)
	}

	c.set(x, y, true)

	if m.isFunctional(x, y) || m.get(x, y) {
		t.Error("setting a module on the clone changed the original")
	}

	if !c.isFunctional(x, y) || !c.get(x, y) {
		t.Error("clone did not record the module")
	}
}
