package model

// Record - Represents one dataset entry, a numeric identifier (UPC) and its free text description.
// Records are compared by value and never modified once created.
type Record struct {
	Identifier  int64
	Description string
}

// Equal - Returns true if both identifier and description are equal
func (R Record) Equal(other Record) bool {
	return R.Identifier == other.Identifier && R.Description == other.Description
}

// Position - Represents where a record was found, the bin in the table and the index within that bin counted
// from the front (most recently inserted) record.
type Position struct {
	IndexInTable int64
	IndexInBin   int64
}

// NotFound - Position returned by searches that didn't find the record
var NotFound = Position{IndexInTable: -1, IndexInBin: -1}

// Found - Returns true if the position refers to an actual record
func (P Position) Found() bool {
	return P.IndexInTable >= 0 && P.IndexInBin >= 0
}
