package catalog

import "math"

const basePrice = 9.99

// Price derives the stable synthetic store price for a catalog id:
// basePrice plus the id modulo 61, rounded to two decimals.
//
// Pure function of the id; stable across calls and processes. Ids that carry
// no usable numeric value are treated as modulus input 0.
func Price(id int64) float64 {
	mod := id % 61
	if mod < 0 {
		mod = 0
	}
	return math.Round((basePrice+float64(mod))*100) / 100
}
