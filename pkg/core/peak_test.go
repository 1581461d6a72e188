package core

import "testing"

func TestWithPattern(t *testing.T) {
	original := Peak{ID: 7, MZ: 500.0, RT: 12.1, Height: 1000.0}
	pattern := &IsotopePattern{
		Points: []DataPoint{
			{MZ: 500.0, Intensity: 1000.0},
			{MZ: 501.0033, Intensity: 600.0},
		},
		Status:      PatternDetected,
		Description: original.Name(),
	}

	annotated := WithPattern(original, pattern, 2)

	if annotated.ID != 7 || annotated.MZ != 500.0 || annotated.RT != 12.1 || annotated.Height != 1000.0 {
		t.Errorf("WithPattern() changed spatial attributes: %+v", annotated)
	}
	if annotated.Charge != 2 {
		t.Errorf("Charge = %d, want 2", annotated.Charge)
	}
	if annotated.Pattern != pattern {
		t.Errorf("Pattern not attached")
	}

	// Original must be untouched
	if original.Pattern != nil || original.Charge != 0 {
		t.Errorf("WithPattern() mutated the original peak: %+v", original)
	}
}

func TestPeakName(t *testing.T) {
	p := Peak{MZ: 500.25, RT: 12.5}
	want := "m/z 500.2500 @ RT 12.50"
	if got := p.Name(); got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestPatternStatusString(t *testing.T) {
	tests := []struct {
		status PatternStatus
		want   string
	}{
		{PatternDetected, "detected"},
		{PatternPredicted, "predicted"},
		{PatternStatus(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	if ParsePatternStatus("predicted") != PatternPredicted {
		t.Errorf("ParsePatternStatus(predicted) mismatch")
	}
	if ParsePatternStatus("detected") != PatternDetected {
		t.Errorf("ParsePatternStatus(detected) mismatch")
	}
}
