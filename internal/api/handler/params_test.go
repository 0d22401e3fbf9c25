package handler

import (
	"io"
	"reflect"
	"strings"
	"testing"
	"time"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func TestParseScheduledAt(t *testing.T) {
	want := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2025-01-10T10:00:00Z", want, false},
		{"2025-01-10T12:00:00+02:00", want, false},
		{"2025-01-10T10:00", want, false},
		{" 2025-01-10T10:00 ", want, false},
		{"2025-01-10", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := parseScheduledAt(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%q: unexpected error state: %v", tt.in, err)
		}
		if !tt.wantErr && (!got.Equal(tt.want) || got.Location() != time.UTC) {
			t.Fatalf("%q: got %v, want %v in UTC", tt.in, got, tt.want)
		}
	}
}

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{",, ,", nil},
		{"go", []string{"go"}},
		{"go, rust ,,sql", []string{"go", "rust", "sql"}},
	}
	for _, tt := range tests {
		if got := splitCSV(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitCSV(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
