package reedsolomon

import (
	"errors"
	"sync"
)

// gfPoly is a polynomial over GF(2^8). term[i] is the coefficient of x^i.
type gfPoly struct {
	term []gfElement
}

// newGFPolyFromData interprets data as big endian coefficients: the last byte
// becomes the x^0 coefficient.
func newGFPolyFromData(data []byte) gfPoly {
	result := gfPoly{term: make([]gfElement, len(data))}

	i := len(data) - 1

	for _, by := range data {
		result.term[i] = gfElement(by)

		i--
	}

	return result.normalised()
}

func newGFPolyMonomial(term gfElement, degree int) gfPoly {
	if term == gfZero {
		return gfPoly{}
	}

	result := gfPoly{term: make([]gfElement, degree+1)}
	result.term[degree] = term

	return result
}

// data returns the numTerms lowest coefficients, big endian.
func (e gfPoly) data(numTerms int) []byte {
	result := make([]byte, numTerms)

	i := numTerms - len(e.term)

	for j := len(e.term) - 1; j >= 0; j-- {
		if i >= 0 {
			result[i] = byte(e.term[j])
		}

		i++
	}

	return result
}

func (e gfPoly) numTerms() int {
	return len(e.term)
}

// evaluate returns e(x) using Horner's method.
func (e gfPoly) evaluate(x gfElement) gfElement {
	var result gfElement

	for i := e.numTerms() - 1; i >= 0; i-- {
		result = gfAdd(gfMultiply(result, x), e.term[i])
	}

	return result
}

func gfPolyMultiply(a, b gfPoly) gfPoly {
	numATerms := a.numTerms()
	numBTerms := b.numTerms()

	if numATerms == 0 || numBTerms == 0 {
		return gfPoly{}
	}

	result := gfPoly{term: make([]gfElement, numATerms+numBTerms-1)}

	for i := 0; i < numATerms; i++ {
		if a.term[i] == gfZero {
			continue
		}

		for j := 0; j < numBTerms; j++ {
			result.term[i+j] = gfAdd(result.term[i+j], gfMultiply(a.term[i], b.term[j]))
		}
	}

	return result.normalised()
}

func gfPolyRemainder(numerator, denominator gfPoly) (gfPoly, error) {
	if denominator.equals(gfPoly{}) {
		return gfPoly{}, errors.New("remainder by zero")
	}

	remainder := numerator.normalised()
	lead := denominator.term[denominator.numTerms()-1]

	for remainder.numTerms() >= denominator.numTerms() {
		degree := remainder.numTerms() - denominator.numTerms()

		coefficient, err := gfDivide(remainder.term[remainder.numTerms()-1], lead)
		if err != nil {
			return gfPoly{}, err
		}

		divisor := gfPolyMultiply(denominator, newGFPolyMonomial(coefficient, degree))

		remainder = gfPolyAdd(remainder, divisor)
	}

	return remainder, nil
}

func gfPolyAdd(a, b gfPoly) gfPoly {
	numATerms := a.numTerms()
	numBTerms := b.numTerms()

	numTerms := numATerms
	if numBTerms > numTerms {
		numTerms = numBTerms
	}

	result := gfPoly{term: make([]gfElement, numTerms)}

	for i := 0; i < numTerms; i++ {
		switch {
		case numATerms > i && numBTerms > i:
			result.term[i] = gfAdd(a.term[i], b.term[i])
		case numATerms > i:
			result.term[i] = a.term[i]
		default:
			result.term[i] = b.term[i]
		}
	}

	return result.normalised()
}

func (e gfPoly) normalised() gfPoly {
	numTerms := e.numTerms()
	maxNonzeroTerm := numTerms - 1

	for i := numTerms - 1; i >= 0; i-- {
		if e.term[i] != 0 {
			break
		}

		maxNonzeroTerm = i - 1
	}

	if maxNonzeroTerm < 0 {
		return gfPoly{}
	} else if maxNonzeroTerm < numTerms-1 {
		e.term = e.term[0 : maxNonzeroTerm+1]
	}

	return e
}

func (e gfPoly) equals(other gfPoly) bool {
	var minecPoly *gfPoly

	var maxecPoly *gfPoly

	if e.numTerms() > other.numTerms() {
		minecPoly = &other
		maxecPoly = &e
	} else {
		minecPoly = &e
		maxecPoly = &other
	}

	numMinTerms := minecPoly.numTerms()
	numMaxTerms := maxecPoly.numTerms()

	for i := 0; i < numMinTerms; i++ {
		if e.term[i] != other.term[i] {
			return false
		}
	}

	for i := numMinTerms; i < numMaxTerms; i++ {
		if maxecPoly.term[i] != 0 {
			return false
		}
	}

	return true
}

// generatorCache holds g(x) = (x - α^0)(x - α^1)...(x - α^(n-1)) by degree n.
var generatorCache = struct {
	sync.Mutex
	poly map[int]gfPoly
}{poly: make(map[int]gfPoly)}

func rsGeneratorPoly(degree int) (gfPoly, error) {
	if degree < 1 || degree > 254 {
		return gfPoly{}, errors.New("generator degree out of range 1-254")
	}

	generatorCache.Lock()
	defer generatorCache.Unlock()

	if g, ok := generatorCache.poly[degree]; ok {
		return g, nil
	}

	generator := gfPoly{term: []gfElement{gfOne}}

	for i := 0; i < degree; i++ {
		nextPoly := gfPoly{term: []gfElement{gfExpTable[i], gfOne}}
		generator = gfPolyMultiply(generator, nextPoly)
	}

	generatorCache.poly[degree] = generator

	return generator, nil
}
