package conf

// DescriptionPrefixLength - Number of leading description characters that HashFunc2 of the two choice algorithm
// takes into account, missing characters count as zero
const DescriptionPrefixLength int = 3

// DescriptionCharWeight - Weight base for the description characters, character i is multiplied by weight^i
const DescriptionCharWeight int64 = 27

// FieldSeparator - Separates identifier from description in a dataset line
const FieldSeparator byte = ','

// QuoteChar - Wraps a description containing separators or quotes, doubled when literal inside a quoted description
const QuoteChar byte = '"'

// MinFilterCapacity - Lowest number of expected records the membership filter is sized for
const MinFilterCapacity uint = 1024

// FilterFalsePositiveRate - Desired false positive rate of the membership filter
const FilterFalsePositiveRate float64 = 0.01

// DefaultReportSizes - Table sizes used by the report command unless given otherwise
const DefaultReportSizes string = "100000,1000,100"

// MetricsNamespace - Namespace of exported table metrics
const MetricsNamespace string = "twohashtable"
