package bin

import (
	"github.com/gostonefire/twohashtable/internal/model"
)

// Bin - Represents one slot of the table, an ordered sequence of records where the front is the most recently
// inserted record. Records are kept in insertion order in the backing slice, so the front is the last element
// and a record's index within the bin counts backwards from there.
type Bin struct {
	records []model.Record
}

// NewBin - Returns a pointer to a new empty Bin
func NewBin() *Bin {
	return &Bin{}
}

// Len - Returns the number of records in the bin
func (B *Bin) Len() int64 {
	return int64(len(B.records))
}

// InsertFront - Adds the record as the new front of the bin
func (B *Bin) InsertFront(record model.Record) {
	B.records = append(B.records, record)
}

// Find - Returns the index (counted from the front) of the first record equal to the given record, or -1 if the
// bin has no such record.
func (B *Bin) Find(record model.Record) int64 {
	n := len(B.records)
	for i := n - 1; i >= 0; i-- {
		if B.records[i].Equal(record) {
			return int64(n - 1 - i)
		}
	}

	return -1
}

// Contains - Returns true if the bin holds a record equal to the given record
func (B *Bin) Contains(record model.Record) bool {
	return B.Find(record) >= 0
}

// Records - Returns an iterator walking the bin records from front to back
func (B *Bin) Records() *Records {
	return newRecords(B.records)
}
