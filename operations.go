package twohashtable

import (
	"github.com/gostonefire/twohashtable/internal/bin"
	"github.com/gostonefire/twohashtable/internal/stats"
)

// TableStat - Statistics on the overall usage and distribution over bins
//   - Records is the total number of records stored
//   - EmptyBins is the number of bins holding no records
//   - MaxBinLength is the number of records in the longest bin
//   - MeanBinLength is the average number of records per bin
//   - StdDev is the population standard deviation of bin lengths
//   - BinDistribution is the number of records stored in each bin
type TableStat struct {
	Records         int64
	EmptyBins       int64
	MaxBinLength    int64
	MeanBinLength   float64
	StdDev          float64
	BinDistribution []int64
}

// Search - Returns the position of the record, or NotFound if the table doesn't hold it.
// The bin from HashFunc1 is searched first and then, if different, the bin from HashFunc2.
func (T *TwoHashTable) Search(record Record) (position Position) {
	position = NotFound

	if !T.filter.MayContain(record) {
		return
	}

	b1, b2, err := T.GetBinNos(record)
	if err != nil {
		T.log.Warnw("search with bin number out of range", "error", err)
		return
	}

	if i := T.bins[b1].Find(record); i >= 0 {
		position = Position{IndexInTable: b1, IndexInBin: i}
		return
	}

	if b1 == b2 {
		return
	}

	if i := T.bins[b2].Find(record); i >= 0 {
		position = Position{IndexInTable: b2, IndexInBin: i}
	}

	return
}

// Contains - Returns true if the table holds the record
func (T *TwoHashTable) Contains(record Record) bool {
	return T.Search(record).Found()
}

// GetStdDev - Returns the population standard deviation of the bin lengths
func (T *TwoHashTable) GetStdDev() float64 {
	return stats.StdDev(T.binLengths())
}

// Stat - Walks through all bins and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length table size with number of records per bin, false will set TableStat.BinDistribution to nil.
func (T *TwoHashTable) Stat(includeDistribution bool) (tableStat TableStat) {
	lengths := T.binLengths()
	summary := stats.Summarize(lengths)

	tableStat = TableStat{
		Records:       summary.Records,
		EmptyBins:     summary.EmptyBins,
		MaxBinLength:  summary.MaxBinLength,
		MeanBinLength: summary.Mean,
		StdDev:        summary.StdDev,
	}
	if includeDistribution {
		tableStat.BinDistribution = lengths
	}

	return
}

// GetTableSize - Returns the number of bins
func (T *TwoHashTable) GetTableSize() int64 {
	return T.tableSize
}

// GetBin - Returns the records of a bin, front (most recently inserted) first
//   - binNo is the bin number, 0 -> table size - 1
func (T *TwoHashTable) GetBin(binNo int64) (records []Record, err error) {
	if binNo < 0 || binNo >= T.tableSize {
		err = BinRangeError{BinNo: binNo, TableSize: T.tableSize}
		return
	}

	records = make([]Record, 0, T.bins[binNo].Len())
	iter := T.bins[binNo].Records()
	for iter.HasNext() {
		r, _ := iter.Next()
		records = append(records, r)
	}

	return
}

// GetBinNos - Returns the two candidate bin numbers for the given record
//   - record is the record to get bin numbers for
//
// It returns:
//   - binNo1 is the bin from HashFunc1 over the identifier
//   - binNo2 is the bin from HashFunc2 over the description
//   - err is of type BinRangeError if the hash algorithm gave a bin outside the table
func (T *TwoHashTable) GetBinNos(record Record) (binNo1, binNo2 int64, err error) {
	binNo1 = T.hashAlgorithm.HashFunc1(record.Identifier)
	if binNo1 < 0 || binNo1 >= T.tableSize {
		err = BinRangeError{BinNo: binNo1, TableSize: T.tableSize}
		return
	}

	binNo2 = T.hashAlgorithm.HashFunc2(record.Description)
	if binNo2 < 0 || binNo2 >= T.tableSize {
		err = BinRangeError{BinNo: binNo2, TableSize: T.tableSize}
		return
	}

	return
}

// insert - Inserts the record at the front of the shorter of its two candidate bins, or the HashFunc1 bin if they
// are of equal length. A record already in the table is ignored. Since every record lives in one of its own two
// candidate bins, those two bins are the only ones that need checking for an existing copy.
func (T *TwoHashTable) insert(record Record) (err error) {
	b1, b2, err := T.GetBinNos(record)
	if err != nil {
		return
	}

	bin1, bin2 := T.bins[b1], T.bins[b2]

	if T.filter.MayContain(record) && (bin1.Contains(record) || bin2.Contains(record)) {
		T.duplicates++
		return
	}

	var target *bin.Bin
	switch {
	case b1 == b2:
		target = bin1
	case bin2.Len() < bin1.Len():
		target = bin2
	default:
		target = bin1
	}

	target.InsertFront(record)
	T.filter.Add(record)
	T.records++

	return
}

// binLengths - Returns the number of records in each bin
func (T *TwoHashTable) binLengths() (lengths []int64) {
	lengths = make([]int64, T.tableSize)
	for i, b := range T.bins {
		lengths[i] = b.Len()
	}

	return
}
