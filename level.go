package qrsymbol

import (
	"fmt"
	"strings"
)

// RecoveryLevel is the error correction level of a symbol.
type RecoveryLevel int

const (
	// Level L: 7% error recovery.
	Low RecoveryLevel = iota

	// Level M: 15% error recovery.
	Medium

	// Level Q: 25% error recovery.
	High

	// Level H: 30% error recovery.
	Highest
)

func (l RecoveryLevel) valid() bool {
	return l >= Low && l <= Highest
}

func (l RecoveryLevel) String() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case High:
		return "Q"
	case Highest:
		return "H"
	default:
		return fmt.Sprintf("RecoveryLevel(%d)", int(l))
	}
}

// formatBits returns the two level bits of the format information.
func (l RecoveryLevel) formatBits() uint32 {
	switch l {
	case Low:
		return 0x1
	case Medium:
		return 0x0
	case High:
		return 0x3
	default:
		return 0x2
	}
}

// ParseLevel parses "L", "M", "Q" or "H", ignoring case. Any other value
// yields Highest together with ErrUnsupportedErrorLevel, so callers that
// ignore the error still get a usable level.
func ParseLevel(s string) (RecoveryLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return Low, nil
	case "M":
		return Medium, nil
	case "Q":
		return High, nil
	case "H":
		return Highest, nil
	default:
		return Highest, fmt.Errorf("%w: %q", ErrUnsupportedErrorLevel, s)
	}
}
