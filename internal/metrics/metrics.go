package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gostonefire/twohashtable/internal/conf"
)

// TableSample - One table's figures to export
type TableSample struct {
	TableSize    int64
	Records      int64
	Duplicates   int64
	EmptyBins    int64
	MaxBinLength int64
	StdDev       float64
}

// Metrics - Holds gauges for table statistics, labelled by table size
type Metrics struct {
	registry     *prometheus.Registry
	records      *prometheus.GaugeVec
	duplicates   *prometheus.GaugeVec
	emptyBins    *prometheus.GaugeVec
	maxBinLength *prometheus.GaugeVec
	stdDev       *prometheus.GaugeVec
}

// NewMetrics - Returns a pointer to a new Metrics with its gauges registered in a private registry
func NewMetrics() *Metrics {
	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: conf.MetricsNamespace,
			Name:      name,
			Help:      help,
		}, []string{"table_size"})
	}

	m := &Metrics{
		registry:     prometheus.NewRegistry(),
		records:      gauge("records", "Number of distinct records in the table."),
		duplicates:   gauge("duplicates", "Number of ignored duplicate inserts."),
		emptyBins:    gauge("empty_bins", "Number of bins holding no records."),
		maxBinLength: gauge("max_bin_length", "Number of records in the longest bin."),
		stdDev:       gauge("bin_length_stddev", "Population standard deviation of bin lengths."),
	}
	m.registry.MustRegister(m.records, m.duplicates, m.emptyBins, m.maxBinLength, m.stdDev)

	return m
}

// Observe - Sets the gauges for the sample's table size
func (M *Metrics) Observe(sample TableSample) {
	label := strconv.FormatInt(sample.TableSize, 10)
	M.records.WithLabelValues(label).Set(float64(sample.Records))
	M.duplicates.WithLabelValues(label).Set(float64(sample.Duplicates))
	M.emptyBins.WithLabelValues(label).Set(float64(sample.EmptyBins))
	M.maxBinLength.WithLabelValues(label).Set(float64(sample.MaxBinLength))
	M.stdDev.WithLabelValues(label).Set(sample.StdDev)
}

// WriteTextfile - Writes all gauges in Prometheus text format to fileName, suitable for a node exporter
// textfile collector
func (M *Metrics) WriteTextfile(fileName string) error {
	return prometheus.WriteToTextfile(fileName, M.registry)
}
