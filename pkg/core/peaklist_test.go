package core

import (
	"math"
	"testing"
)

func TestPeakListValidation(t *testing.T) {
	tests := []struct {
		name    string
		list    func() *PeakList
		wantErr bool
	}{
		{
			name: "valid list",
			list: func() *PeakList {
				l := NewPeakList("run1", "run1.raw")
				r := NewRow(1)
				r.SetPeak("run1.raw", Peak{ID: 1, MZ: 500.0, RT: 10.0, Height: 100.0})
				l.AddRow(r)
				return l
			},
			wantErr: false,
		},
		{
			name: "missing name",
			list: func() *PeakList {
				return NewPeakList("", "run1.raw")
			},
			wantErr: true,
		},
		{
			name: "no sources",
			list: func() *PeakList {
				return NewPeakList("run1")
			},
			wantErr: true,
		},
		{
			name: "duplicate row IDs",
			list: func() *PeakList {
				l := NewPeakList("run1", "run1.raw")
				r1 := NewRow(1)
				r1.SetPeak("run1.raw", Peak{ID: 1, MZ: 500.0, Height: 100.0})
				r2 := NewRow(1)
				r2.SetPeak("run1.raw", Peak{ID: 2, MZ: 600.0, Height: 50.0})
				l.AddRow(r1)
				l.AddRow(r2)
				return l
			},
			wantErr: true,
		},
		{
			name: "NaN m/z",
			list: func() *PeakList {
				l := NewPeakList("run1", "run1.raw")
				r := NewRow(1)
				r.SetPeak("run1.raw", Peak{ID: 1, MZ: math.NaN(), Height: 100.0})
				l.AddRow(r)
				return l
			},
			wantErr: true,
		},
		{
			name: "negative m/z",
			list: func() *PeakList {
				l := NewPeakList("run1", "run1.raw")
				r := NewRow(1)
				r.SetPeak("run1.raw", Peak{ID: 1, MZ: -500.0, Height: 100.0})
				l.AddRow(r)
				return l
			},
			wantErr: true,
		},
		{
			name: "negative height",
			list: func() *PeakList {
				l := NewPeakList("run1", "run1.raw")
				r := NewRow(1)
				r.SetPeak("run1.raw", Peak{ID: 1, MZ: 500.0, Height: -1.0})
				l.AddRow(r)
				return l
			},
			wantErr: true,
		},
		{
			name: "infinite height",
			list: func() *PeakList {
				l := NewPeakList("run1", "run1.raw")
				r := NewRow(1)
				r.SetPeak("run1.raw", Peak{ID: 1, MZ: 500.0, Height: math.Inf(1)})
				l.AddRow(r)
				return l
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.list().Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRowForPeak(t *testing.T) {
	l := NewPeakList("run1", "run1.raw")

	r1 := NewRow(10)
	r1.SetPeak("run1.raw", Peak{ID: 1, MZ: 500.0, Height: 100.0})
	r2 := NewRow(20)
	r2.SetPeak("run1.raw", Peak{ID: 2, MZ: 600.0, Height: 50.0})
	l.AddRow(r1)
	l.AddRow(r2)

	if got := l.RowForPeak(1); got != r1 {
		t.Errorf("RowForPeak(1) = %v, want row 10", got)
	}
	if got := l.RowForPeak(2); got != r2 {
		t.Errorf("RowForPeak(2) = %v, want row 20", got)
	}
	if got := l.RowForPeak(99); got != nil {
		t.Errorf("RowForPeak(99) = %v, want nil", got)
	}
}

func TestPeaksReturnsRowOrder(t *testing.T) {
	l := NewPeakList("run1", "run1.raw")
	for i, mz := range []float64{500.0, 300.0, 400.0} {
		r := NewRow(i + 1)
		r.SetPeak("run1.raw", Peak{ID: i + 1, MZ: mz, Height: 10.0})
		l.AddRow(r)
	}

	peaks := l.Peaks("run1.raw")
	if len(peaks) != 3 {
		t.Fatalf("Peaks() returned %d peaks, want 3", len(peaks))
	}
	for i, want := range []float64{500.0, 300.0, 400.0} {
		if peaks[i].MZ != want {
			t.Errorf("peak %d m/z = %f, want %f", i, peaks[i].MZ, want)
		}
	}
}

func TestAppliedMethodsOrder(t *testing.T) {
	l := NewPeakList("run1", "run1.raw")
	l.AddAppliedMethod(AppliedMethod{Description: "Peak detection"})
	l.AddAppliedMethod(AppliedMethod{Description: "Peak filter"})

	methods := l.AppliedMethods()
	if len(methods) != 2 {
		t.Fatalf("AppliedMethods() returned %d records, want 2", len(methods))
	}
	if methods[0].Description != "Peak detection" || methods[1].Description != "Peak filter" {
		t.Errorf("AppliedMethods() order = %v", methods)
	}
}

func TestCopyRowProperties(t *testing.T) {
	from := NewRow(1)
	from.Comment = "standard mix"
	to := NewRow(2)

	CopyRowProperties(from, to)

	if to.Comment != "standard mix" {
		t.Errorf("Comment = %q, want %q", to.Comment, "standard mix")
	}
	if to.ID != 2 {
		t.Errorf("ID = %d, want 2 (IDs must not be copied)", to.ID)
	}
}
