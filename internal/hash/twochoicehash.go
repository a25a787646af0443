package hash

import (
	"github.com/gostonefire/twohashtable/internal/conf"
)

// TwoChoiceHashAlgorithm - The internally used bin selection algorithm. HashFunc1 takes the identifier modulo the
// table size, HashFunc2 weighs the first three description characters (c0 + 27*c1 + 729*c2) and takes the absolute
// value of that sum modulo the table size. The first characters of a description usually come from the brand
// while the last digits of a UPC don't, which keeps the two functions fairly independent.
type TwoChoiceHashAlgorithm struct {
	tableSize int64
}

// NewTwoChoiceHashAlgorithm - Returns a pointer to a new TwoChoiceHashAlgorithm instance
func NewTwoChoiceHashAlgorithm(tableSize int64) *TwoChoiceHashAlgorithm {
	ha := &TwoChoiceHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The table size is used as is, no rounding to powers of 2 or primes.
//   - tableSize is the number of bins the table will address
func (T *TwoChoiceHashAlgorithm) SetTableSize(tableSize int64) {
	T.tableSize = tableSize
}

// HashFunc1 - Given the identifier it generates an index (bin) between 0 and table size - 1.
// Identifiers are expected to be non-negative, a negative identifier gives a negative index which is rejected
// down stream.
func (T *TwoChoiceHashAlgorithm) HashFunc1(identifier int64) int64 {
	return identifier % T.tableSize
}

// HashFunc2 - Given the description it generates an index (bin) between 0 and table size - 1.
// Characters are the description bytes taken as signed 8-bit values, so bytes above 0x7f count as negative.
func (T *TwoChoiceHashAlgorithm) HashFunc2(description string) int64 {
	var sum, weight int64 = 0, 1
	for i := 0; i < conf.DescriptionPrefixLength; i++ {
		if i < len(description) {
			sum += int64(int8(description[i])) * weight
		}
		weight *= conf.DescriptionCharWeight
	}

	if sum < 0 {
		sum = -sum
	}

	return sum % T.tableSize
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (T *TwoChoiceHashAlgorithm) GetTableSize() int64 {
	return T.tableSize
}
