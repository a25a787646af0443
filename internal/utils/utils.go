package utils

import (
	"encoding/binary"

	"github.com/gostonefire/twohashtable/internal/model"
)

// IdentifierToBytes - Returns the identifier as 8 little endian bytes
func IdentifierToBytes(identifier int64) (b []byte) {
	b = make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(identifier))

	return
}

// RecordToKey - Returns a byte key that is unique for the record, the identifier bytes followed by the description
func RecordToKey(record model.Record) (key []byte) {
	key = make([]byte, 8, 8+len(record.Description))
	binary.LittleEndian.PutUint64(key, uint64(record.Identifier))
	key = append(key, record.Description...)

	return
}
