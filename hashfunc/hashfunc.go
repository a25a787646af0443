package hashfunc

// HashAlgorithm - Interface that permits an implementation using the TwoHashTable to supply a custom pair of
// bin selection functions suited for its particular distribution of records.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a TwoHashTable is created, hence if a custom hash algorithm already has a table size
	// it will be overwritten by the number of bins given at creation.
	//   - tableSize is the number of bins the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given the record identifier it generates an index (bin) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(identifier int64) int64

	// HashFunc2 - Given the record description it generates an index (bin) between 0 and table size - 1
	// It should be independent of HashFunc1 so that the two functions rarely agree on a bin.
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc2(description string) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64
}
