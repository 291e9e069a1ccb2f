package qrsymbol

import (
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    RecoveryLevel
		wantErr bool
	}{
		{"L", Low, false},
		{"m", Medium, false},
		{"Q", High, false},
		{" h ", Highest, false},
		{"X", Highest, true},
		{"", Highest, true},
		{"LL", Highest, true},
	}

	for _, test := range tests {
		got, err := ParseLevel(test.in)

		if got != test.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", test.in, got, test.want)
		}

		if test.wantErr != errors.Is(err, ErrUnsupportedErrorLevel) {
			t.Errorf("ParseLevel(%q) error = %v", test.in, err)
		}
	}
}

func TestRecoveryLevelString(t *testing.T) {
	for level, want := range map[RecoveryLevel]string{
		Low:               "L",
		Medium:            "M",
		High:              "Q",
		Highest:           "H",
		RecoveryLevel(-1): "RecoveryLevel(-1)",
	} {
		if got := level.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
