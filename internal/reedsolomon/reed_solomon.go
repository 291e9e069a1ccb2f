// Package reedsolomon computes the Reed-Solomon error correction codewords
// used by QR symbols, over GF(2^8) with primitive polynomial 0x11d.
package reedsolomon

import "fmt"

// Encode returns numECBytes error correction codewords for the data block.
func Encode(data []byte, numECBytes int) ([]byte, error) {
	// Create a polynomial representing |data|.
	//
	// The bytes are interpreted as the sequence of coefficients of a polynomial.
	// The last byte's value becomes the x^0 coefficient, the second to last
	// becomes the x^1 coefficient and so on.
	if len(data)+numECBytes > 255 {
		return nil, fmt.Errorf("block of %d+%d codewords exceeds 255", len(data), numECBytes)
	}

	ecpoly := newGFPolyFromData(data)
	ecpoly = gfPolyMultiply(ecpoly, newGFPolyMonomial(gfOne, numECBytes))

	// Pick the generator polynomial.
	generator, err := rsGeneratorPoly(numECBytes)
	if err != nil {
		return nil, err
	}

	// Generate the error correction bytes.
	remainder, err := gfPolyRemainder(ecpoly, generator)
	if err != nil {
		return nil, err
	}

	// The remainder drops leading zero coefficients, data() restores them.
	return remainder.data(numECBytes), nil
}

// Generator returns the coefficients of the generator polynomial of the given
// degree, highest power first. The leading coefficient is always 1.
func Generator(degree int) ([]byte, error) {
	g, err := rsGeneratorPoly(degree)
	if err != nil {
		return nil, err
	}

	return g.data(degree + 1), nil
}
