package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/DataDog/zstd"
)

// CompressionLevel is the zstd level used for .zst profiles
var CompressionLevel = 3

// WriteProfile writes named columns of equal length as CSV with a header row
func WriteProfile(w io.Writer, names []string, cols ...[]float64) (err error) {
	if len(names) != len(cols) {
		return fmt.Errorf("profile: %d names for %d columns", len(names), len(cols))
	}
	for i, col := range cols {
		if len(col) != len(cols[0]) {
			return fmt.Errorf("profile: column %s has %d rows, want %d", names[i], len(col), len(cols[0]))
		}
	}
	cw := csv.NewWriter(w)
	if err = cw.Write(names); err != nil {
		return
	}
	record := make([]string, len(cols))
	for row := 0; len(cols) > 0 && row < len(cols[0]); row++ {
		for i, col := range cols {
			record[i] = strconv.FormatFloat(col[row], 'g', -1, 64)
		}
		if err = cw.Write(record); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadProfile parses a CSV written by WriteProfile
func ReadProfile(r io.Reader) (names []string, cols [][]float64, err error) {
	var (
		records [][]string
	)
	if records, err = csv.NewReader(r).ReadAll(); err != nil {
		return
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("profile: no header")
	}
	names = records[0]
	cols = make([][]float64, len(names))
	for row, rec := range records[1:] {
		for i, field := range rec {
			var f float64
			if f, err = strconv.ParseFloat(field, 64); err != nil {
				return nil, nil, fmt.Errorf("profile: row %d column %s: %w", row+1, names[i], err)
			}
			cols[i] = append(cols[i], f)
		}
	}
	return
}

func compressed(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

// WriteFile writes a profile to path, zstd compressed when the path ends in .zst
func WriteFile(path string, names []string, cols ...[]float64) (err error) {
	var (
		buf  bytes.Buffer
		data []byte
	)
	if err = WriteProfile(&buf, names, cols...); err != nil {
		return
	}
	data = buf.Bytes()
	if compressed(path) {
		if data, err = zstd.CompressLevel(nil, data, CompressionLevel); err != nil {
			return
		}
	}
	return os.WriteFile(path, data, 0644)
}

func ReadFile(path string) (names []string, cols [][]float64, err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	if compressed(path) {
		if data, err = zstd.Decompress(nil, data); err != nil {
			return
		}
	}
	return ReadProfile(bytes.NewReader(data))
}
