package qrsymbol

import (
	"errors"
	"testing"
)

func TestModuleLength(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		if got, want := v.ModuleLength(), int(v-1)*4+21; got != want {
			t.Errorf("Version(%d).ModuleLength() = %d, want %d", v, got, want)
		}
	}

	if got := MaxVersion.ModuleLength(); got != 177 {
		t.Errorf("ModuleLength(40) = %d, want 177", got)
	}
}

// Every capacity entry fills its version exactly.
func TestCapacityTable(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for _, level := range []RecoveryLevel{Low, Medium, High, Highest} {
			e, err := v.capacity(level)
			if err != nil {
				t.Fatalf("capacity(%d, %s): %v", v, level, err)
			}

			if e.blocks1 < 1 || e.ecCodewords < 1 {
				t.Errorf("%d-%s: empty entry %+v", v, level, e)
			}

			if e.blocks2 > 0 && e.dataCodewords2 != e.dataCodewords1+1 {
				t.Errorf("%d-%s: group 2 blocks hold %d codewords, group 1 %d",
					v, level, e.dataCodewords2, e.dataCodewords1)
			}

			if got, want := e.numCodewords(), v.codewordCapacity(); got != want {
				t.Errorf("%d-%s: entry holds %d codewords, symbol has %d", v, level, got, want)
			}
		}
	}
}

func TestByteCapacity(t *testing.T) {
	tests := []struct {
		version Version
		level   RecoveryLevel
		want    int
	}{
		{1, Low, 17},
		{1, Medium, 14},
		{1, High, 11},
		{1, Highest, 7},
		{9, Low, 230},
		{10, Low, 271},
		{27, Highest, 625},
		{40, Low, 2953},
		{40, Highest, 1273},
	}

	for _, test := range tests {
		if got := test.version.ByteCapacity(test.level); got != test.want {
			t.Errorf("ByteCapacity(%d-%s) = %d, want %d", test.version, test.level, got, test.want)
		}
	}
}

func TestSelectVersion(t *testing.T) {
	tests := []struct {
		numBytes int
		level    RecoveryLevel
		want     Version
	}{
		{0, Low, 1},
		{5, Low, 1},
		{17, Low, 1},
		{18, Low, 2},
		{7, Highest, 1},
		{8, Highest, 2},
		{230, Low, 9},
		{231, Low, 10},
		{2953, Low, 40},
		{1273, Highest, 40},
	}

	for _, test := range tests {
		got, err := selectVersion(test.numBytes, test.level)
		if err != nil {
			t.Fatalf("selectVersion(%d, %s): %v", test.numBytes, test.level, err)
		}

		if got != test.want {
			t.Errorf("selectVersion(%d, %s) = %d, want %d", test.numBytes, test.level, got, test.want)
		}
	}

	for _, test := range []struct {
		numBytes int
		level    RecoveryLevel
	}{
		{2954, Low},
		{1274, Highest},
	} {
		if _, err := selectVersion(test.numBytes, test.level); !errors.Is(err, ErrMessageTooLong) {
			t.Errorf("selectVersion(%d, %s) error = %v, want ErrMessageTooLong", test.numBytes, test.level, err)
		}
	}
}

func TestCapacityLookupError(t *testing.T) {
	for _, test := range []struct {
		version Version
		level   RecoveryLevel
	}{
		{0, Low},
		{41, Low},
		{1, RecoveryLevel(4)},
	} {
		_, err := test.version.capacity(test.level)

		var lookupErr *CapacityLookupError
		if !errors.As(err, &lookupErr) {
			t.Fatalf("capacity(%d, %d) error = %v, want *CapacityLookupError", test.version, test.level, err)
		}

		if lookupErr.Version != test.version || lookupErr.Level != test.level {
			t.Errorf("error = %+v", lookupErr)
		}

		if n := test.version.DataCodewords(test.level); n != 0 {
			t.Errorf("DataCodewords(%d, %d) = %d, want 0", test.version, test.level, n)
		}
	}
}

func TestVersionInfoBCH(t *testing.T) {
	const generator = 0x1f25

	for v := Version(7); v <= MaxVersion; v++ {
		want := uint32(v)<<12 | bchRemainder(uint32(v)<<12, generator, 12)

		if versionInfo[v] != want {
			t.Errorf("versionInfo[%d] = %#05x, want %#05x", v, versionInfo[v], want)
		}
	}

	for v := MinVersion; v < 7; v++ {
		if versionInfo[v] != 0 {
			t.Errorf("versionInfo[%d] = %#x, want 0", v, versionInfo[v])
		}
	}
}

func TestAlignmentCenters(t *testing.T) {
	if len(alignmentCenters[1]) != 0 {
		t.Errorf("version 1 has alignment centers %v", alignmentCenters[1])
	}

	for v := Version(2); v <= MaxVersion; v++ {
		c := alignmentCenters[v]

		if want := int(v)/7 + 2; len(c) != want {
			t.Errorf("version %d has %d centers, want %d", v, len(c), want)
		}

		if c[0] != 6 || c[len(c)-1] != v.ModuleLength()-7 {
			t.Errorf("version %d centers %v do not span 6..%d", v, c, v.ModuleLength()-7)
		}
	}
}
