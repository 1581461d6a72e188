package filter

import (
	"testing"

	"github.com/ChrisMcGann/isotoper/pkg/core"
)

func makeList(t *testing.T) *core.PeakList {
	t.Helper()
	list := core.NewPeakList("run1", "run1.raw")
	peaks := []core.Peak{
		{ID: 1, MZ: 400.0, RT: 5.0, Height: 2000},
		{ID: 2, MZ: 500.0, RT: 10.0, Height: 100},
		{ID: 3, MZ: 900.0, RT: 50.0, Height: 5000},
	}
	for _, p := range peaks {
		row := core.NewRow(p.ID)
		row.SetPeak("run1.raw", p)
		list.AddRow(row)
	}
	return list
}

func TestApplyMinHeight(t *testing.T) {
	c := &Config{MinHeight: 500}

	filtered := c.Apply(makeList(t))

	if filtered.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", filtered.NumRows())
	}
	for _, row := range filtered.Rows() {
		p, _ := row.Peak("run1.raw")
		if p.Height < 500 {
			t.Errorf("row %d height %f below cutoff", row.ID, p.Height)
		}
	}
}

func TestApplyRanges(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantRows []int
	}{
		{"mz range", Config{MZMin: 450, MZMax: 950}, []int{2, 3}},
		{"rt range", Config{RTMin: 4, RTMax: 12}, []int{1, 2}},
		{"combined", Config{MZMin: 450, MZMax: 950, RTMin: 4, RTMax: 12}, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := tt.config.Apply(makeList(t))

			var got []int
			for _, row := range filtered.Rows() {
				got = append(got, row.ID)
			}
			if len(got) != len(tt.wantRows) {
				t.Fatalf("rows = %v, want %v", got, tt.wantRows)
			}
			for i := range got {
				if got[i] != tt.wantRows[i] {
					t.Errorf("rows = %v, want %v", got, tt.wantRows)
				}
			}
		})
	}
}

func TestApplyRecordsProvenance(t *testing.T) {
	list := makeList(t)
	list.AddAppliedMethod(core.AppliedMethod{Description: "Peak detection"})

	c := &Config{MinHeight: 500}
	filtered := c.Apply(list)

	methods := filtered.AppliedMethods()
	if len(methods) != 2 {
		t.Fatalf("AppliedMethods() = %d records, want 2", len(methods))
	}
	if methods[0].Description != "Peak detection" {
		t.Errorf("prior record not carried forward: %v", methods[0])
	}
	if methods[1].Description != "Peak filter" {
		t.Errorf("filter record missing: %v", methods[1])
	}
}

func TestActive(t *testing.T) {
	if (&Config{}).Active() {
		t.Errorf("empty config reported active")
	}
	if !(&Config{MinHeight: 1}).Active() {
		t.Errorf("config with cutoff reported inactive")
	}
	if !(&Config{RTMax: 30}).Active() {
		t.Errorf("config with RT bound reported inactive")
	}
}
