package ledger

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValidationError marks input rejected before reaching the server.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Draft carries raw field values as they arrive from a form, a CSV row
// or a JSON body, before any coercion has happened.
type Draft struct {
	Date         string
	Hours        string
	Type         string
	Note         string
	RequiresMemo bool
	MemoDone     bool
}

// Normalize coerces a draft into an Entry, applying the field defaults:
// unparseable hours become 0, an absent type becomes "extra", and
// memoDone is ignored unless requiresMemo is set. A missing date is the
// only fatal condition.
func (d Draft) Normalize() (Entry, error) {
	if strings.TrimSpace(d.Date) == "" {
		return Entry{}, &ValidationError{Field: "date", Reason: "required"}
	}

	typ := Type(d.Type)
	if typ == "" {
		typ = TypeExtra
	}

	e := Entry{
		Date:         d.Date,
		Hours:        ParseHours(d.Hours),
		Type:         typ,
		Note:         d.Note,
		RequiresMemo: d.RequiresMemo,
		MemoDone:     d.RequiresMemo && d.MemoDone,
	}
	return e, nil
}

// ParseHours parses a raw hours value, returning 0 when it cannot be
// read as a number.
func ParseHours(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatHours renders hours with the fewest digits that round-trip,
// so 2 stays "2" and 2.25 stays "2.25".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// Hours is a float64 that tolerates JSON numbers, quoted numbers and
// garbage alike; anything unparseable decodes to 0. It keeps the loose
// coercion at the wire boundary so Entry itself stays a plain float.
type Hours float64

func (h *Hours) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*h = Hours(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*h = Hours(ParseHours(s))
		return nil
	}
	*h = 0
	return nil
}
