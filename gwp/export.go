// SPDX-License-Identifier: MIT

package gwp

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/exiogwp/mrio"
)

// WriteCSV writes s as comma-separated text: a header of the index level
// names plus s.Name, then one row per label in index order. Fields are quoted
// only when they contain a comma, a quote or a line break.
func WriteCSV(w io.Writer, s *mrio.Series) error {
	if s == nil {
		return fmt.Errorf("write csv: %w: nil series", ErrMissingMatrix)
	}
	cw := csv.NewWriter(w)

	header := append(s.Index.Names(), s.Name)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	rec := make([]string, 0, len(header))
	for i, v := range s.Values {
		rec = append(rec[:0], s.Index.Key(i)...)
		rec = append(rec, FormatFloat(v))
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	return nil
}

// WriteFile writes s to path through a temporary file in the same directory
// that is renamed over path once complete. On error path is left as it was.
func WriteFile(path string, s *mrio.Series) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteCSV(tmp, s); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// FormatFloat renders v the way Python's repr does: the shortest string that
// round-trips, in positional notation with at least one decimal ("15.0")
// when the decimal exponent is in [-4, 16), in scientific notation otherwise
// ("1e-05", "1e+16"). NaN renders as an empty field, infinities as "inf" and
// "-inf".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}
	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(fixed, '.') {
		fixed += ".0"
	}

	return fixed
}
