//go:build unit

package main

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugawarayuuta/sonnet"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDataset string = "../../testdata/test_data.csv"

const probes string = "753950001954,Doctor's Best Best Curcumin C3 Complex 1000mg Tablets - 120 Ct\n" +
	"025800024117,Weight Watchers Smart Ones Smart Creations\n" +
	"079927020217,\"Unique \"\"splits\"\" Split-open Pretzel Extra Dark\"\n"

func writeProbes(t *testing.T) string {
	fileName := filepath.Join(t.TempDir(), "probes.csv")
	require.NoError(t, os.WriteFile(fileName, []byte(probes), 0644), "write probes")
	return fileName
}

func TestRun(t *testing.T) {
	t.Run("writes text report", func(t *testing.T) {
		// Prepare
		var stdout, stderr bytes.Buffer

		// Execute
		code := run([]string{"-data", testDataset, "-sizes", "3", "-probes", writeProbes(t)}, &stdout, &stderr)

		// Check
		assert.Equal(t, 0, code, "exit code")
		assert.Equal(t, "Table size = 3, stddev = 0.471405\n"+
			"      [0,3]\n"+
			"      [-1,-1]\n"+
			"      [1,0]\n", stdout.String(), "report")
	})

	t.Run("writes json report and metrics", func(t *testing.T) {
		// Prepare
		var stdout, stderr bytes.Buffer
		metricsFile := filepath.Join(t.TempDir(), "table.prom")

		// Execute
		code := run([]string{"-data", testDataset, "-sizes", "3, 7", "-probes", writeProbes(t), "-json", "-metrics-file", metricsFile}, &stdout, &stderr)

		// Check
		require.Equal(t, 0, code, "exit code")

		var reports []tableReport
		require.NoError(t, sonnet.Unmarshal(stdout.Bytes(), &reports), "valid json")
		require.Len(t, reports, 2, "one report per size")
		assert.Equal(t, int64(3), reports[0].TableSize, "first size")
		assert.Equal(t, int64(7), reports[1].TableSize, "second size")
		assert.Equal(t, int64(13), reports[0].Records, "records")
		assert.Equal(t, int64(1), reports[0].Duplicates, "duplicates")
		assert.Equal(t, int64(2), reports[0].SkippedLines, "skipped lines")
		assert.InDelta(t, 0.471404, reports[0].StdDev, 1e-6, "deviation")
		assert.Equal(t, probeResult{
			Identifier:   79927020217,
			Description:  `Unique "splits" Split-open Pretzel Extra Dark`,
			IndexInTable: 1,
			IndexInBin:   0,
		}, reports[0].Probes[2], "escaped probe")

		b, err := os.ReadFile(metricsFile)
		require.NoError(t, err, "metrics written")
		assert.True(t, strings.Contains(string(b), `twohashtable_records{table_size="7"} 13`), "metrics for second size")
	})

	t.Run("xxhash algorithm", func(t *testing.T) {
		// Prepare
		var stdout, stderr bytes.Buffer

		// Execute
		code := run([]string{"-data", testDataset, "-sizes", "5", "-algorithm", "xxhash"}, &stdout, &stderr)

		// Check
		assert.Equal(t, 0, code, "exit code")
		assert.True(t, strings.HasPrefix(stdout.String(), "Table size = 5, stddev = "), "report header")
	})

	t.Run("fails on bad arguments", func(t *testing.T) {
		for _, args := range [][]string{
			{},
			{"-data", testDataset, "-sizes", "3,x"},
			{"-data", testDataset, "-algorithm", "md5"},
		} {
			// Prepare
			var stdout, stderr bytes.Buffer

			// Execute
			code := run(args, &stdout, &stderr)

			// Check
			assert.Equal(t, 2, code, "usage error for %v", args)
			assert.Empty(t, stdout.String(), "no report")
		}
	})

	t.Run("fails on non-positive table size", func(t *testing.T) {
		// Prepare
		var stdout, stderr bytes.Buffer

		// Execute
		code := run([]string{"-data", testDataset, "-sizes", "0"}, &stdout, &stderr)

		// Check
		assert.Equal(t, 1, code, "configuration error")
	})

	t.Run("fails on missing dataset", func(t *testing.T) {
		// Prepare
		var stdout, stderr bytes.Buffer

		// Execute
		code := run([]string{"-data", filepath.Join(t.TempDir(), "missing.csv"), "-sizes", "3"}, &stdout, &stderr)

		// Check
		assert.Equal(t, 1, code, "data source error")
	})
}
