//go:build integration

package twohashtable

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

const groceryDataset string = "testdata/grocery_upc_database.csv"

func TestNewTwoHashTable_groceryDataset(t *testing.T) {
	if _, err := os.Stat(groceryDataset); err != nil {
		t.Skipf("%s not available: %s", groceryDataset, err)
	}

	probes := []Record{
		NewRecord(753950001954, "Doctor's Best Best Curcumin C3 Complex 1000mg Tablets - 120 Ct"),
		NewRecord(25800024117, "Weight Watchers Smart Ones Smart Creations"),
		NewRecord(79927020217, `Unique "splits" Split-open Pretzel Extra Dark`),
		NewRecord(1638098830, "Weleda Bar Soap Rose - 3.5 Oz"),
		NewRecord(895172001432, "Pure Life Body Lotion Coconut And Mango - 15.0 Fl Oz"),
		NewRecord(995172001432, "Pure Life Body Lotion Coconut And Mango - 14.9 Fl Oz"),
	}

	tests := []struct {
		tableSize int64
		stdDev    float64
		positions []Position
	}{
		{100000, 1.78235, []Position{{1954, 5}, {24117, 3}, {20217, 3}, {98830, 0}, NotFound, NotFound}},
		{1000, 21.457, []Position{{954, 49}, {117, 109}, {217, 128}, {830, 0}, NotFound, NotFound}},
		{100, 15.4253, []Position{{54, 1105}, {17, 916}, {17, 1108}, {30, 0}, NotFound, NotFound}},
	}

	for _, tc := range tests {
		// Prepare
		tht, _, err := NewTwoHashTable(groceryDataset, tc.tableSize, nil)
		require.NoError(t, err, "creates table of size %d", tc.tableSize)

		// Execute
		stdDev := tht.GetStdDev()

		// Check
		assert.InDelta(t, tc.stdDev, stdDev, 1e-3, "standard deviation for table size %d", tc.tableSize)
		for i, r := range probes {
			assert.Equal(t, tc.positions[i], tht.Search(r), "position of probe %d for table size %d", i, tc.tableSize)
		}
	}
}
