package timeseries

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sartorproj/gopvquality/errs"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string   // Column name for timestamps (default: first column)
	ValueColumn string   // Column name for values (default: "value")
	LabelColumn string   // Column name for a boolean label column (optional)
	DateFormats []string // Timestamp layouts to try, in order
	HasHeader   bool     // Whether CSV has a header row (default: true)
	Delimiter   rune     // Field delimiter (default: ',')
	SkipRows    int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "value",
		DateFormats: []string{
			time.RFC3339,
			"2006-01-02 15:04:05-07:00",
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05",
			"2006-01-02",
		},
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	s, _, err := loadCSVFile(filename, opts, false)
	return s, err
}

// LoadLabeledCSV loads a time series together with a boolean label column
// (for example the "outlier" column of labeled fixture files). The returned
// mask is aligned with the series.
func LoadLabeledCSV(filename string, opts *CSVOptions) (*Series, *Mask, error) {
	return loadCSVFile(filename, opts, true)
}

func loadCSVFile(filename string, opts *CSVOptions, withLabels bool) (*Series, *Mask, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()
	return loadCSV(file, opts, withLabels)
}

// LoadCSVFromReader loads a time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	s, _, err := loadCSV(r, opts, false)
	return s, err
}

// LoadLabeledCSVFromReader loads a labeled time series from an io.Reader.
func LoadLabeledCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, *Mask, error) {
	return loadCSV(r, opts, true)
}

func loadCSV(r io.Reader, opts *CSVOptions, withLabels bool) (*Series, *Mask, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	if len(opts.DateFormats) == 0 {
		opts.DateFormats = DefaultCSVOptions().DateFormats
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, nil, err
		}
	}

	dateIdx, valueIdx, labelIdx := 0, 1, -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, nil, err
		}
		dateIdx, valueIdx, labelIdx = findColumns(header, opts)
		if valueIdx == -1 {
			return nil, nil, errs.Configurationf(
				"value column %q not found in CSV header", opts.ValueColumn)
		}
		if withLabels && labelIdx == -1 {
			return nil, nil, errs.Configurationf(
				"label column %q not found in CSV header", opts.LabelColumn)
		}
	}

	var (
		timestamps []time.Time
		values     []float64
		labels     []bool
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if valueIdx >= len(record) || dateIdx >= len(record) {
			continue
		}

		valStr := cleanField(record[valueIdx])
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue
		}

		ts, ok := parseTimestamp(cleanField(record[dateIdx]), opts.DateFormats)
		if !ok {
			continue
		}

		var label bool
		if withLabels {
			if labelIdx >= len(record) {
				continue
			}
			label, err = strconv.ParseBool(strings.ToLower(cleanField(record[labelIdx])))
			if err != nil {
				continue
			}
		}

		timestamps = append(timestamps, ts)
		values = append(values, val)
		if withLabels {
			labels = append(labels, label)
		}
	}

	if len(values) == 0 {
		return nil, nil, errs.InputShape("no valid data found in CSV")
	}

	series, err := NewWithTimestamps(timestamps, values)
	if err != nil {
		return nil, nil, err
	}
	if !withLabels {
		return series, nil, nil
	}
	mask, err := NewMask(series.Timestamps, labels)
	if err != nil {
		return nil, nil, err
	}
	return series, mask, nil
}

func findColumns(header []string, opts *CSVOptions) (dateIdx, valueIdx, labelIdx int) {
	dateIdx, valueIdx, labelIdx = -1, -1, -1
	for i, h := range header {
		h = cleanField(h)
		switch {
		case opts.DateColumn != "" && h == opts.DateColumn:
			dateIdx = i
		case opts.DateColumn == "" && dateIdx == -1 &&
			(h == "" || h == "timestamp" || h == "date" || h == "measured_on"):
			dateIdx = i
		case h == opts.ValueColumn:
			valueIdx = i
		case opts.LabelColumn != "" && h == opts.LabelColumn:
			labelIdx = i
		}
	}
	if dateIdx == -1 {
		dateIdx = 0
	}
	return dateIdx, valueIdx, labelIdx
}

func parseTimestamp(s string, formats []string) (time.Time, bool) {
	for _, layout := range formats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "\""))
}

// SaveCSV saves a time series to a CSV file with a timestamp,value header.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	writer.WriteString("timestamp,value\n")
	for i, v := range series.Values {
		writer.WriteString(series.Timestamps[i].Format(time.RFC3339))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return nil
}
