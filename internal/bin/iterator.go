package bin

import (
	"github.com/gostonefire/twohashtable/internal/model"
)

// Records - Is used to iterate over the records of a bin one by one, front first.
type Records struct {
	records []model.Record
	next    int
}

// newRecords - Returns a pointer to a new Records struct
func newRecords(records []model.Record) *Records {
	return &Records{
		records: records,
		next:    len(records) - 1,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.next >= 0
}

// Next - Returns the next record.
// It returns:
//   - record is the next record towards the back of the bin.
//   - ok is false if there were no more records when calling this function.
func (R *Records) Next() (record model.Record, ok bool) {
	if R.next < 0 {
		return
	}

	record = R.records[R.next]
	ok = true
	R.next--

	return
}
