package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/twohashtable/internal/utils"
)

// XXHashAlgorithm - An alternative bin selection algorithm using xxhash64 over the identifier bytes respective the
// full description. It spreads records far more evenly than the TwoChoiceHashAlgorithm and is mainly there to
// compare bin length deviations against.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of bins the table will address
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// HashFunc1 - Given the identifier it generates an index (bin) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(identifier int64) int64 {
	h := xxhash.Sum64(utils.IdentifierToBytes(identifier))
	return int64(h % uint64(X.tableSize))
}

// HashFunc2 - Given the description it generates an index (bin) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc2(description string) int64 {
	h := xxhash.Sum64String(description)
	return int64(h % uint64(X.tableSize))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}
