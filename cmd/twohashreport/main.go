package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/zap"

	"github.com/gostonefire/twohashtable"
	"github.com/gostonefire/twohashtable/hashfunc"
	"github.com/gostonefire/twohashtable/internal/conf"
	"github.com/gostonefire/twohashtable/internal/hash"
	"github.com/gostonefire/twohashtable/internal/loader"
	"github.com/gostonefire/twohashtable/internal/metrics"
	"github.com/gostonefire/twohashtable/internal/model"
)

// options - Command line settings
type options struct {
	data        string
	sizes       []int64
	probes      string
	algorithm   string
	json        bool
	metricsFile string
	debug       bool
}

// probeResult - Where one probe record was found
type probeResult struct {
	Identifier   int64  `json:"identifier"`
	Description  string `json:"description"`
	IndexInTable int64  `json:"indexInTable"`
	IndexInBin   int64  `json:"indexInBin"`
}

// tableReport - Statistics and probe results for one table size
type tableReport struct {
	TableSize    int64         `json:"tableSize"`
	StdDev       float64       `json:"stdDev"`
	Records      int64         `json:"records"`
	Duplicates   int64         `json:"duplicates"`
	SkippedLines int64         `json:"skippedLines"`
	EmptyBins    int64         `json:"emptyBins"`
	MaxBinLength int64         `json:"maxBinLength"`
	Probes       []probeResult `json:"probes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run - Builds one table per requested size and reports deviation and probe positions, returns the exit code
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	logger, err := newLogger(opts.debug)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()
	log := logger.Sugar()

	var probes []model.Record
	if opts.probes != "" {
		_, err = loader.NewLoader(log).LoadFile(opts.probes, func(r model.Record) { probes = append(probes, r) })
		if err != nil {
			log.Errorw("could not load probes", "file", opts.probes, "error", err)
			return 1
		}
	}

	var m *metrics.Metrics
	if opts.metricsFile != "" {
		m = metrics.NewMetrics()
	}

	reports := make([]tableReport, 0, len(opts.sizes))
	for _, size := range opts.sizes {
		var alg hashfunc.HashAlgorithm
		if opts.algorithm == "xxhash" {
			alg = hash.NewXXHashAlgorithm(size)
		}

		tht, info, err := twohashtable.NewTwoHashTable(opts.data, size, alg)
		if err != nil {
			log.Errorw("could not build table", "tableSize", size, "error", err)
			return 1
		}

		stat := tht.Stat(false)
		report := tableReport{
			TableSize:    size,
			StdDev:       stat.StdDev,
			Records:      info.Records,
			Duplicates:   info.Duplicates,
			SkippedLines: info.SkippedLines,
			EmptyBins:    stat.EmptyBins,
			MaxBinLength: stat.MaxBinLength,
			Probes:       make([]probeResult, 0, len(probes)),
		}
		for _, p := range probes {
			pos := tht.Search(p)
			report.Probes = append(report.Probes, probeResult{
				Identifier:   p.Identifier,
				Description:  p.Description,
				IndexInTable: pos.IndexInTable,
				IndexInBin:   pos.IndexInBin,
			})
		}
		reports = append(reports, report)

		if m != nil {
			m.Observe(metrics.TableSample{
				TableSize:    size,
				Records:      info.Records,
				Duplicates:   info.Duplicates,
				EmptyBins:    stat.EmptyBins,
				MaxBinLength: stat.MaxBinLength,
				StdDev:       stat.StdDev,
			})
		}

		log.Infow("table built", "tableSize", size, "records", info.Records, "stdDev", stat.StdDev)
	}

	if m != nil {
		if err = m.WriteTextfile(opts.metricsFile); err != nil {
			log.Errorw("could not write metrics", "file", opts.metricsFile, "error", err)
			return 1
		}
	}

	if opts.json {
		err = writeJSON(stdout, reports)
	} else {
		err = writeText(stdout, reports)
	}
	if err != nil {
		log.Errorw("could not write report", "error", err)
		return 1
	}

	return 0
}

// parseOptions - Parses and validates command line arguments
func parseOptions(args []string, stderr io.Writer) (opts options, err error) {
	fs := flag.NewFlagSet("twohashreport", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var sizes string
	fs.StringVar(&opts.data, "data", "", "dataset file, one <identifier>,<description> record per line")
	fs.StringVar(&sizes, "sizes", conf.DefaultReportSizes, "comma separated table sizes")
	fs.StringVar(&opts.probes, "probes", "", "optional file with records to search for, same format as the dataset")
	fs.StringVar(&opts.algorithm, "algorithm", "twochoice", "hash algorithm, twochoice or xxhash")
	fs.BoolVar(&opts.json, "json", false, "write report as JSON")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "optional file to write Prometheus text format metrics to")
	fs.BoolVar(&opts.debug, "debug", false, "verbose logging")

	if err = fs.Parse(args); err != nil {
		return
	}

	if opts.data == "" {
		err = fmt.Errorf("-data is required")
		return
	}

	if opts.algorithm != "twochoice" && opts.algorithm != "xxhash" {
		err = fmt.Errorf("unknown algorithm %q, use twochoice or xxhash", opts.algorithm)
		return
	}

	for _, s := range strings.Split(sizes, ",") {
		var size int64
		size, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			err = fmt.Errorf("invalid table size %q: %w", s, err)
			return
		}
		opts.sizes = append(opts.sizes, size)
	}

	return
}

// newLogger - Returns a production logger, or a development logger if debug is set
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// writeText - Writes the report in plain text, one header line per table followed by one line per probe
func writeText(w io.Writer, reports []tableReport) (err error) {
	for _, r := range reports {
		_, err = fmt.Fprintf(w, "Table size = %d, stddev = %s\n", r.TableSize, strconv.FormatFloat(r.StdDev, 'g', 6, 64))
		if err != nil {
			return
		}
		for _, p := range r.Probes {
			_, err = fmt.Fprintf(w, "      [%d,%d]\n", p.IndexInTable, p.IndexInBin)
			if err != nil {
				return
			}
		}
	}

	return
}

// writeJSON - Writes the reports as a JSON array
func writeJSON(w io.Writer, reports []tableReport) (err error) {
	b, err := sonnet.Marshal(reports)
	if err != nil {
		return
	}
	b = append(b, '\n')
	_, err = w.Write(b)

	return
}
