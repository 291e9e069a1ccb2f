package qrsymbol

import (
	"testing"

	"github.com/RashadAnsari/qrsymbol/internal/bitset"
)

// readData reads the non-functional modules back in placement order.
func readData(m *symbolMatrix) *bitset.Bitset {
	result := bitset.New()

	for right := m.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}

		for vert := 0; vert < m.size; vert++ {
			y := vert
			if (right+1)&2 == 0 {
				y = m.size - 1 - vert
			}

			for x := right; x >= right-1; x-- {
				if !m.isFunctional(x, y) {
					result.AppendBools(m.get(x, y))
				}
			}
		}
	}

	return result
}

func TestPlaceDataFillsEveryCodeword(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		m := buildSymbolMatrix(v)
		n := v.codewordCapacity()

		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*13 + int(v))
		}

		if placed := m.placeData(bitset.FromBytes(data)); placed != n*8 {
			t.Fatalf("version %d: placed %d bits, want %d", v, placed, n*8)
		}

		read := readData(m)

		// Versions 2-6 reserve their remainder modules.
		leftover := v.remainderBits()
		if v < 7 {
			leftover = 0
		}

		if got, want := read.Len(), n*8+leftover; got != want {
			t.Fatalf("version %d: %d data modules, want %d", v, got, want)
		}

		got := read.Bytes()
		for i, b := range data {
			if got[i] != b {
				t.Fatalf("version %d: codeword %d = %#x, want %#x", v, i, got[i], b)
			}
		}

		for i := n * 8; i < read.Len(); i++ {
			if bit, _ := read.At(i); bit {
				t.Errorf("version %d: remainder bit %d is dark", v, i-n*8)
			}
		}
	}
}

// The first codeword fills the bottom right corner, upward, right column
// first.
func TestPlaceDataStartsBottomRight(t *testing.T) {
	m := buildSymbolMatrix(1)
	m.placeData(bitset.FromBytes([]byte{0xb4}))

	last := m.size - 1
	want := []struct {
		x, y int
		v    bool
	}{
		{last, last, true},
		{last - 1, last, false},
		{last, last - 1, true},
		{last - 1, last - 1, true},
		{last, last - 2, false},
		{last - 1, last - 2, true},
		{last, last - 3, false},
		{last - 1, last - 3, false},
	}

	for _, w := range want {
		if m.get(w.x, w.y) != w.v {
			t.Errorf("module (%d, %d) = %v, want %v", w.x, w.y, m.get(w.x, w.y), w.v)
		}
	}
}
