package model

import (
	"testing"
	"time"
)

func TestLocationKnown(t *testing.T) {
	city := "Pune"
	lat := 18.52

	cases := []struct {
		name string
		loc  Location
		want bool
	}{
		{"empty", Location{}, false},
		{"city only", Location{City: &city}, true},
		{"coordinates only", Location{Lat: &lat}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.loc.Known(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTimestampLayout(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local).Format(TimestampLayout)
	if ts != "2024-03-09 07:05:01" {
		t.Fatalf("unexpected timestamp %q", ts)
	}
}
