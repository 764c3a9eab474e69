package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSV column names. The id column is pass-through metadata: it is
// written on export so a file can be traced back to its source rows,
// and ignored on import, which always creates fresh entries.
var csvHeader = []string{"id", "date", "hours", "type", "note", "requiresMemo", "memoDone"}

// WriteCSV serializes entries as delimited text with a header row.
// Booleans are rendered as the literal tokens Yes/No rather than
// true/false, so files read naturally in a spreadsheet.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		rec := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Date,
			FormatHours(e.Hours),
			string(e.Type),
			e.Note,
			boolToken(e.RequiresMemo),
			boolToken(e.MemoDone),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses delimited text with a header row into normalized
// entries ready to be created. Rows without a date are silently
// dropped. Columns the codec does not know are ignored, and missing
// columns fall back to the field defaults. Returned entries carry no
// id; exporting then re-importing reproduces the same logical entries
// under new identifiers.
func ReadCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var entries []Entry
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		d := Draft{
			Date:         field(rec, "date"),
			Hours:        field(rec, "hours"),
			Type:         field(rec, "type"),
			Note:         field(rec, "note"),
			RequiresMemo: parseBoolToken(field(rec, "requiresMemo")),
			MemoDone:     parseBoolToken(field(rec, "memoDone")),
		}
		e, err := d.Normalize()
		if err != nil {
			// only a missing date fails normalization; such rows are
			// filtered, not reported
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func boolToken(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// parseBoolToken accepts exactly "Yes" (the export token) and "true"
// (the wire form), case-sensitive. Everything else is false.
func parseBoolToken(s string) bool {
	return s == "Yes" || s == "true"
}
