package twohashtable

import "fmt"

// TableSizeError - Custom error to inform that a table can't be created with the given size
type TableSizeError struct {
	TableSize int64
}

// Error - Used to notify that the table size is not valid
func (E TableSizeError) Error() string {
	return fmt.Sprintf("table size must be a positive value higher than 0 (zero), got %d", E.TableSize)
}

// DataSourceError - Custom error to inform that the dataset could not be read, no table is built when this happens
type DataSourceError struct {
	Source string
	Err    error
}

// Error - Used to notify that the dataset could not be read
func (E DataSourceError) Error() string {
	return fmt.Sprintf("error while loading dataset %s: %s", E.Source, E.Err)
}

// Unwrap - Returns the underlying cause
func (E DataSourceError) Unwrap() error {
	return E.Err
}

// BinRangeError - Custom error to inform that a hash algorithm returned a bin number outside the table
type BinRangeError struct {
	BinNo     int64
	TableSize int64
}

// Error - Used to notify that a bin number was outside the permitted range
func (E BinRangeError) Error() string {
	return fmt.Sprintf("received bin number %d from hash algorithm is outside permitted range 0 -> %d", E.BinNo, E.TableSize-1)
}
