package filter

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/gostonefire/twohashtable/internal/conf"
	"github.com/gostonefire/twohashtable/internal/model"
	"github.com/gostonefire/twohashtable/internal/utils"
)

// Filter - A bloom filter over records telling whether a record may have been added. It is written only while a
// table is built and read afterwards, so it carries no locking.
type Filter struct {
	filter *bloom.BloomFilter
}

// NewFilter - Returns a pointer to a new Filter sized for the expected number of records
//   - expected is the number of records the filter should hold at the configured false positive rate,
//     values below conf.MinFilterCapacity are raised to it
func NewFilter(expected uint) *Filter {
	if expected < conf.MinFilterCapacity {
		expected = conf.MinFilterCapacity
	}

	return &Filter{filter: bloom.NewWithEstimates(expected, conf.FilterFalsePositiveRate)}
}

// Add - Adds the record to the filter
func (F *Filter) Add(record model.Record) {
	F.filter.Add(utils.RecordToKey(record))
}

// MayContain - Returns false if the record was definitely never added, true if it may have been
func (F *Filter) MayContain(record model.Record) bool {
	return F.filter.Test(utils.RecordToKey(record))
}

// Cap - Returns the number of bits in the filter
func (F *Filter) Cap() uint {
	return F.filter.Cap()
}
