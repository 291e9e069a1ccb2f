package reedsolomon

import "errors"

// gfElement is an element of GF(2^8), generated by x^8 + x^4 + x^3 + x^2 + 1.
type gfElement uint8

const (
	gfZero = gfElement(0)
	gfOne  = gfElement(1)
)

const gfPrimitive = 0x11d

var errDivideByZero = errors.New("divide by zero")

var (
	// gfExpTable[i] = α^i. gfExpTable[255] wraps to 1.
	gfExpTable [256]gfElement

	// gfLogTable[a] = i where α^i = a. gfLogTable[0] is unused.
	gfLogTable [256]int
)

func init() {
	x := 1

	for i := 0; i < 255; i++ {
		gfExpTable[i] = gfElement(x)
		gfLogTable[x] = i

		x <<= 1
		if x&0x100 != 0 {
			x ^= gfPrimitive
		}
	}

	gfExpTable[255] = gfExpTable[0]
}

// gfAdd returns a + b. Subtraction is the same operation.
func gfAdd(a, b gfElement) gfElement {
	return a ^ b
}

func gfMultiply(a, b gfElement) gfElement {
	if a == gfZero || b == gfZero {
		return gfZero
	}

	return gfExpTable[(gfLogTable[a]+gfLogTable[b])%255]
}

func gfDivide(a, b gfElement) (gfElement, error) {
	if b == gfZero {
		return gfZero, errDivideByZero
	}

	if a == gfZero {
		return gfZero, nil
	}

	return gfExpTable[(gfLogTable[a]-gfLogTable[b]+255)%255], nil
}

func gfInverse(a gfElement) (gfElement, error) {
	if a == gfZero {
		return gfZero, errDivideByZero
	}

	return gfExpTable[255-gfLogTable[a]], nil
}
