package bitset

import (
	"fmt"
)

// Bitset is an append-only sequence of bits, stored most significant bit
// first.
type Bitset struct {
	// The number of bits stored.
	numBits int

	// Storage for individual bits.
	bits []byte
}

func New(v ...bool) *Bitset {
	b := &Bitset{numBits: 0, bits: make([]byte, 0)}
	b.AppendBools(v...)

	return b
}

func FromBytes(data []byte) *Bitset {
	b := New()
	b.AppendBytes(data)

	return b
}

func (b *Bitset) AppendBytes(data []byte) {
	// Whole bytes never fail the width check in AppendByte.
	for _, d := range data {
		_ = b.AppendByte(d, 8)
	}
}

func (b *Bitset) AppendByte(value byte, numBits int) error {
	if numBits > 8 {
		return fmt.Errorf("numBits %d out of range 0-8", numBits)
	}

	return b.AppendUint32(uint32(value), numBits)
}

func (b *Bitset) AppendUint32(value uint32, numBits int) error {
	if numBits < 0 || numBits > 32 {
		return fmt.Errorf("numBits %d out of range 0-32", numBits)
	}

	b.ensureCapacity(numBits)

	for i := numBits - 1; i >= 0; i-- {
		if value&(1<<uint(i)) != 0 {
			b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
		}

		b.numBits++
	}

	return nil
}

func (b *Bitset) ensureCapacity(numBits int) {
	numBits += b.numBits

	newNumBytes := numBits / 8
	if numBits%8 != 0 {
		newNumBytes++
	}

	if len(b.bits) >= newNumBytes {
		return
	}

	b.bits = append(b.bits, make([]byte, newNumBytes+2*len(b.bits))...)
}

func (b *Bitset) Append(other *Bitset) {
	b.ensureCapacity(other.numBits)

	for i := 0; i < other.numBits; i++ {
		if other.bits[i/8]&(0x80>>uint(i%8)) != 0 {
			b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
		}

		b.numBits++
	}
}

func (b *Bitset) AppendBools(bits ...bool) {
	b.ensureCapacity(len(bits))

	for _, v := range bits {
		if v {
			b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
		}

		b.numBits++
	}
}

func (b *Bitset) AppendNumBools(num int, value bool) {
	for i := 0; i < num; i++ {
		b.AppendBools(value)
	}
}

// PadToByte appends zero bits up to the next byte boundary.
func (b *Bitset) PadToByte() {
	if r := b.numBits % 8; r != 0 {
		b.AppendNumBools(8-r, false)
	}
}

func (b *Bitset) Len() int {
	return b.numBits
}

func (b *Bitset) At(index int) (bool, error) {
	if index < 0 || index >= b.numBits {
		return false, fmt.Errorf("index %d out of range", index)
	}

	return (b.bits[index/8] & (0x80 >> byte(index%8))) != 0, nil
}

// Bytes returns the stored bits packed into bytes. A trailing partial byte is
// padded with zero bits.
func (b *Bitset) Bytes() []byte {
	n := b.numBits / 8
	if b.numBits%8 != 0 {
		n++
	}

	result := make([]byte, n)
	copy(result, b.bits)

	return result
}

func (b *Bitset) String() string {
	result := make([]byte, b.numBits)

	for i := 0; i < b.numBits; i++ {
		result[i] = '0'
		if b.bits[i/8]&(0x80>>uint(i%8)) != 0 {
			result[i] = '1'
		}
	}

	return string(result)
}
