package twohashtable

import (
	"io"

	"go.uber.org/zap"

	"github.com/gostonefire/twohashtable/hashfunc"
	"github.com/gostonefire/twohashtable/internal/bin"
	"github.com/gostonefire/twohashtable/internal/filter"
	"github.com/gostonefire/twohashtable/internal/hash"
	"github.com/gostonefire/twohashtable/internal/loader"
	"github.com/gostonefire/twohashtable/internal/model"
)

// Record - A dataset entry, a numeric identifier (UPC) and a free text description
type Record = model.Record

// Position - Where a record was found, bin in table and index in bin counted from the bin front
type Position = model.Position

// NotFound - Position returned when a searched record is not in the table
var NotFound = model.NotFound

// TableInfo - Information structure containing some information about the table created
//   - NumberOfBins is the fixed number of bins in the table
//   - Records is the number of distinct records inserted
//   - Duplicates is the number of inserts that were ignored since the record already existed
//   - SkippedLines is the number of malformed dataset lines that were skipped
//   - InternalAlgorithm is true if the internal two choice hash algorithm is used
type TableInfo struct {
	NumberOfBins      int64
	Records           int64
	Duplicates        int64
	SkippedLines      int64
	InternalAlgorithm bool
}

// TwoHashTable - The main implementation struct
type TwoHashTable struct {
	name              string
	tableSize         int64
	bins              []*bin.Bin
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	filter            *filter.Filter
	records           int64
	duplicates        int64
	log               *zap.SugaredLogger
}

// NewTwoHashTable - Returns a new table with all records from the dataset file inserted in file order.
// The logger used is the zap global sugared logger, which is silent unless replaced by the application.
//   - fileName is the dataset file, one record per line on the form <identifier>,<description>
//   - tableSize is the number of bins, it never changes once the table is created
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - twoHashTable is a pointer to a TwoHashTable struct
//   - tableInfo is a TableInfo struct containing some data regarding the table created.
//   - err is either of type TableSizeError, DataSourceError, BinRangeError or nil if everything went ok
func NewTwoHashTable(fileName string, tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (
	twoHashTable *TwoHashTable,
	tableInfo TableInfo,
	err error,
) {
	if tableSize <= 0 {
		err = TableSizeError{TableSize: tableSize}
		return
	}

	var records []Record
	ld := loader.NewLoader(zap.S())
	loadStat, err := ld.LoadFile(fileName, func(r model.Record) { records = append(records, r) })
	if err != nil {
		err = DataSourceError{Source: fileName, Err: err}
		return
	}

	twoHashTable, tableInfo, err = build(fileName, records, tableSize, hashAlgorithm)
	tableInfo.SkippedLines = loadStat.Skipped

	return
}

// NewFromReader - Same as NewTwoHashTable but reads the dataset from r
//   - name is used to identify the dataset in errors and logs
func NewFromReader(name string, r io.Reader, tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (
	twoHashTable *TwoHashTable,
	tableInfo TableInfo,
	err error,
) {
	if tableSize <= 0 {
		err = TableSizeError{TableSize: tableSize}
		return
	}

	var records []Record
	ld := loader.NewLoader(zap.S())
	loadStat, err := ld.Load(r, func(rec model.Record) { records = append(records, rec) })
	if err != nil {
		err = DataSourceError{Source: name, Err: err}
		return
	}

	twoHashTable, tableInfo, err = build(name, records, tableSize, hashAlgorithm)
	tableInfo.SkippedLines = loadStat.Skipped

	return
}

// NewFromRecords - Returns a new table with the given records inserted in slice order
func NewFromRecords(records []Record, tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (
	twoHashTable *TwoHashTable,
	tableInfo TableInfo,
	err error,
) {
	if tableSize <= 0 {
		err = TableSizeError{TableSize: tableSize}
		return
	}

	return build("records", records, tableSize, hashAlgorithm)
}

// NewRecord - Returns a record given its identifier and unescaped description
func NewRecord(identifier int64, description string) Record {
	return Record{Identifier: identifier, Description: description}
}

// ParseRecord - Parses one dataset line, <identifier>,<description>, where the description may be quoted
func ParseRecord(line string) (record Record, err error) {
	return loader.ParseLine(line)
}

// build - Allocates the bins and inserts the records one by one in the given order
func build(name string, records []Record, tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (
	twoHashTable *TwoHashTable,
	tableInfo TableInfo,
	err error,
) {
	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewTwoChoiceHashAlgorithm(tableSize)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(tableSize)
	}

	bins := make([]*bin.Bin, tableSize)
	for i := range bins {
		bins[i] = bin.NewBin()
	}

	t := &TwoHashTable{
		name:              name,
		tableSize:         tableSize,
		bins:              bins,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
		filter:            filter.NewFilter(uint(len(records))),
		log:               zap.S(),
	}

	for _, r := range records {
		err = t.insert(r)
		if err != nil {
			return
		}
	}

	t.log.Debugw("table built", "name", name, "tableSize", tableSize, "records", t.records, "duplicates", t.duplicates)

	twoHashTable = t
	tableInfo = TableInfo{
		NumberOfBins:      tableSize,
		Records:           t.records,
		Duplicates:        t.duplicates,
		InternalAlgorithm: internalAlg,
	}

	return
}
