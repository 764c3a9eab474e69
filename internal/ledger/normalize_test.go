package ledger

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNormalize_Defaults(t *testing.T) {
	e, err := Draft{Date: "2024-03-01"}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v, want nil", err)
	}
	if e.Type != TypeExtra {
		t.Errorf("type = %q, want extra", e.Type)
	}
	if e.Hours != 0 {
		t.Errorf("hours = %v, want 0", e.Hours)
	}
	if e.Note != "" {
		t.Errorf("note = %q, want empty", e.Note)
	}
	if e.RequiresMemo || e.MemoDone {
		t.Error("memo flags should default to false")
	}
}

func TestNormalize_MissingDate(t *testing.T) {
	for _, date := range []string{"", "   "} {
		_, err := Draft{Date: date, Type: "extra"}.Normalize()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Normalize(date=%q) error = %v, want ValidationError", date, err)
		}
	}
}

func TestNormalize_HoursCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"2", 2},
		{"2.25", 2.25},
		{" 8 ", 8},
		{"abc", 0},
		{"", 0},
		{"-1.5", -1.5},
	}
	for _, tc := range cases {
		e, err := Draft{Date: "2024-03-01", Hours: tc.raw}.Normalize()
		if err != nil {
			t.Fatalf("Normalize(hours=%q) error = %v", tc.raw, err)
		}
		if e.Hours != tc.want {
			t.Errorf("hours(%q) = %v, want %v", tc.raw, e.Hours, tc.want)
		}
	}
}

func TestNormalize_MemoDoneIgnoredWithoutRequiresMemo(t *testing.T) {
	e, err := Draft{Date: "2024-03-01", MemoDone: true}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if e.MemoDone {
		t.Error("memoDone should be dropped when requiresMemo is false")
	}

	e, err = Draft{Date: "2024-03-01", RequiresMemo: true, MemoDone: true}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !e.MemoDone {
		t.Error("memoDone should survive when requiresMemo is true")
	}
}

func TestHours_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`2.5`, 2.5},
		{`"3.25"`, 3.25},
		{`"abc"`, 0},
		{`null`, 0},
		{`true`, 0},
	}
	for _, tc := range cases {
		var h Hours
		if err := json.Unmarshal([]byte(tc.raw), &h); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tc.raw, err)
		}
		if float64(h) != tc.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tc.raw, float64(h), tc.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{2.25, "2.25"},
		{0, "0"},
		{-1.5, "-1.5"},
	}
	for _, tc := range cases {
		if got := FormatHours(tc.in); got != tc.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeExtra, TypeUse, TypeFamiliar, TypeMemo, TypeChange} {
		if !typ.Valid() {
			t.Errorf("%q should be valid", typ)
		}
	}
	if Type("vacation").Valid() {
		t.Error("unknown type should not be valid")
	}
}

func TestTypeCountsHours(t *testing.T) {
	if !TypeExtra.CountsHours() || !TypeUse.CountsHours() || !TypeFamiliar.CountsHours() {
		t.Error("extra/use/familiar should count hours")
	}
	if TypeMemo.CountsHours() || TypeChange.CountsHours() {
		t.Error("memo/change should not count hours")
	}
}
