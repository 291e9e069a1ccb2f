package qrsymbol

import (
	"errors"
	"fmt"
)

var (
	// ErrMessageTooLong is returned when no version holds the message at the
	// requested level.
	ErrMessageTooLong = errors.New("message too long to encode")

	// ErrCapacityExceeded is returned when the encoded bit stream does not
	// fit the data codewords of the chosen version.
	ErrCapacityExceeded = errors.New("encoded data exceeds symbol capacity")

	ErrUnsupportedErrorLevel = errors.New("unsupported error correction level")
)

// CapacityLookupError reports a version and level pair with no capacity
// entry.
type CapacityLookupError struct {
	Version Version
	Level   RecoveryLevel
}

func (e *CapacityLookupError) Error() string {
	return fmt.Sprintf("no capacity entry for version %d level %s", int(e.Version), e.Level)
}
