package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadCSV reads the requested columns from a CSV file with a header row
// and comma delimiter, keeping every skip-th data record starting with the
// first (skip == 0 keeps all records). Columns not present in the header are a fatal
// configuration error (ErrColumnNotFound); a record whose requested field fails to parse as a
// float is skipped and reported back as a warning string rather than
// aborting the read, mirroring the original ingester's per-row tolerance
// (original_source/src/csv_reader.rs::read_csv_file).
//
// All returned channel vectors have equal length: a row is only appended
// to any channel once every requested column on that row has parsed
// successfully, so partial rows never desynchronize the channels.
func LoadCSV(path string, columns []string, skip int) (channels map[string][]float32, warnings []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("trace: open %q: %w: %v", path, ErrUnreadableFile, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may vary; malformed rows are reported, not rejected by the reader

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("trace: read header of %q: %w: %v", path, ErrUnreadableFile, err)
	}

	colIdx := make([]int, len(columns))
	for i, name := range columns {
		idx := -1
		for j, h := range header {
			if h == name {
				idx = j
				break
			}
		}
		if idx == -1 {
			return nil, nil, fmt.Errorf("trace: column %q in %q: %w", name, path, ErrColumnNotFound)
		}
		colIdx[i] = idx
	}

	channels = make(map[string][]float32, len(columns))
	for _, name := range columns {
		channels[name] = nil
	}

	stride := skip
	if stride > 0 {
		stride-- // skip is the distance between kept records, so skip-1 records are dropped between them
	}
	countdown := 0
	rowNum := 0
	for {
		record, rerr := r.Read()
		if rerr != nil {
			break // io.EOF or a structurally broken record; either way, stop reading
		}
		rowNum++

		keep := skip == 0 || countdown == 0
		if skip != 0 {
			if countdown == 0 {
				countdown = stride
			} else {
				countdown--
			}
		}
		if !keep {
			continue
		}

		values := make([]float32, len(columns))
		ok := true
		for i, idx := range colIdx {
			if idx >= len(record) {
				warnings = append(warnings, fmt.Sprintf("row %d: missing field for column %q", rowNum, columns[i]))
				ok = false
				break
			}
			v, perr := strconv.ParseFloat(record[idx], 32)
			if perr != nil {
				warnings = append(warnings, fmt.Sprintf("row %d: failed to parse %q as float: %v", rowNum, record[idx], perr))
				ok = false
				break
			}
			values[i] = float32(v)
		}
		if !ok {
			continue
		}
		for i, name := range columns {
			channels[name] = append(channels[name], values[i])
		}
	}

	return channels, warnings, nil
}
