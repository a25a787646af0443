//go:build unit

package twohashtable

import (
	"errors"
	"github.com/gostonefire/twohashtable/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDataset string = "testdata/test_data.csv"

var (
	curcumin = NewRecord(753950001954, "Doctor's Best Best Curcumin C3 Complex 1000mg Tablets - 120 Ct")
	smartOne = NewRecord(25800024117, "Weight Watchers Smart Ones Smart Creations")
	splits   = NewRecord(79927020217, `Unique "splits" Split-open Pretzel Extra Dark`)
)

func TestNewTwoHashTable(t *testing.T) {
	t.Run("creates table from dataset", func(t *testing.T) {
		// Execute
		tht, info, err := NewTwoHashTable(testDataset, 3, nil)

		// Check
		require.NoError(t, err, "creates table")
		assert.Equal(t, testDataset, tht.name, "correct name")
		assert.Equal(t, int64(3), tht.GetTableSize(), "correct table size")
		assert.Len(t, tht.bins, 3, "one bin per slot")
		assert.Equal(t, TableInfo{
			NumberOfBins:      3,
			Records:           13,
			Duplicates:        1,
			SkippedLines:      2,
			InternalAlgorithm: true,
		}, info, "correct table info")
	})

	t.Run("validation dataset gives expected deviation and positions", func(t *testing.T) {
		// Prepare
		tht, _, err := NewTwoHashTable(testDataset, 3, nil)
		require.NoError(t, err, "creates table")

		// Execute
		stdDev := tht.GetStdDev()
		curcuminPos := tht.Search(curcumin)
		smartOnePos := tht.Search(smartOne)
		splitsPos := tht.Search(splits)

		// Check
		assert.InDelta(t, 0.471404, stdDev, 1e-6, "correct standard deviation")
		assert.Equal(t, Position{IndexInTable: 0, IndexInBin: 3}, curcuminPos, "correct position")
		assert.Equal(t, NotFound, smartOnePos, "not inserted")
		assert.Equal(t, Position{IndexInTable: 1, IndexInBin: 0}, splitsPos, "escaped quotes unescaped before insert")
	})

	t.Run("error when table size is not positive", func(t *testing.T) {
		for _, size := range []int64{0, -3} {
			// Execute
			tht, _, err := NewTwoHashTable(testDataset, size, nil)

			// Check
			assert.Nil(t, tht, "no table")
			var sizeErr TableSizeError
			assert.True(t, errors.As(err, &sizeErr), "table size error")
			assert.Equal(t, size, sizeErr.TableSize, "offending size reported")
		}
	})

	t.Run("error when dataset is missing", func(t *testing.T) {
		// Execute
		tht, _, err := NewTwoHashTable(filepath.Join(t.TempDir(), "missing.csv"), 3, nil)

		// Check
		assert.Nil(t, tht, "no partially loaded table")
		var dsErr DataSourceError
		assert.True(t, errors.As(err, &dsErr), "data source error")
		assert.True(t, errors.Is(err, os.ErrNotExist), "cause preserved")
	})

	t.Run("uses supplied hash algorithm", func(t *testing.T) {
		// Prepare
		alg := hash.NewXXHashAlgorithm(1)

		// Execute
		tht, info, err := NewTwoHashTable(testDataset, 17, alg)

		// Check
		require.NoError(t, err, "creates table")
		assert.False(t, info.InternalAlgorithm, "custom algorithm")
		assert.Equal(t, int64(17), alg.GetTableSize(), "table size handed to algorithm")
		assert.Equal(t, int64(13), tht.Stat(false).Records, "all distinct records inserted")
		assert.True(t, tht.Contains(curcumin), "record findable")
	})
}

func TestNewFromReader(t *testing.T) {
	t.Run("creates table from reader", func(t *testing.T) {
		// Prepare
		data := "1638098830,Weleda Bar Soap Rose - 3.5 Oz\n" +
			"895172001432,Pure Life Body Lotion Coconut And Mango - 14.9 Fl Oz\n" +
			"1638098830,Weleda Bar Soap Rose - 3.5 Oz\n"

		// Execute
		tht, info, err := NewFromReader("inline", strings.NewReader(data), 10, nil)

		// Check
		require.NoError(t, err, "creates table")
		assert.Equal(t, int64(2), info.Records, "two distinct records")
		assert.Equal(t, int64(1), info.Duplicates, "one duplicate")
		assert.Equal(t, Position{IndexInTable: 0, IndexInBin: 0}, tht.Search(NewRecord(1638098830, "Weleda Bar Soap Rose - 3.5 Oz")), "h1 bin on tie")
	})

	t.Run("error when table size is not positive", func(t *testing.T) {
		// Execute
		_, _, err := NewFromReader("inline", strings.NewReader(""), 0, nil)

		// Check
		assert.ErrorAs(t, err, &TableSizeError{}, "table size error")
	})
}

func TestParseRecord(t *testing.T) {
	t.Run("parses quoted description", func(t *testing.T) {
		// Execute
		r, err := ParseRecord(`079927020217,"Unique ""splits"" Split-open Pretzel Extra Dark"`)

		// Check
		assert.NoError(t, err, "parses record")
		assert.Equal(t, splits, r, "unescaped record")
	})

	t.Run("error on malformed line", func(t *testing.T) {
		// Execute
		_, err := ParseRecord("not a record")

		// Check
		assert.Error(t, err, "malformed line")
	})
}
