package core

import (
	"math"
	"testing"
)

func TestNeutralMass(t *testing.T) {
	tests := []struct {
		name      string
		mz        float64
		charge    int
		wantMass  float64
		tolerance float64
	}{
		{
			name:      "singly charged",
			mz:        501.00727646688,
			charge:    1,
			wantMass:  500.0,
			tolerance: 1e-9,
		},
		{
			name:      "doubly charged",
			mz:        251.00727646688,
			charge:    2,
			wantMass:  500.0,
			tolerance: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeutralMass(tt.mz, tt.charge)
			if math.Abs(got-tt.wantMass) > tt.tolerance {
				t.Errorf("NeutralMass() = %.9f, want %.9f", got, tt.wantMass)
			}
		})
	}
}

func TestMZForChargeRoundTrip(t *testing.T) {
	for charge := 1; charge <= 4; charge++ {
		mz := MZForCharge(842.51, charge)
		back := NeutralMass(mz, charge)
		if math.Abs(back-842.51) > 1e-9 {
			t.Errorf("charge %d: round trip = %.9f, want 842.51", charge, back)
		}
	}
}

func TestRoundFloat(t *testing.T) {
	tests := []struct {
		val       float64
		precision int
		want      float64
	}{
		{500.12341, 4, 500.1234},
		{500.126, 2, 500.13},
		{12.04, 1, 12.0},
		{-1.231, 2, -1.23},
	}

	for _, tt := range tests {
		got := RoundFloat(tt.val, tt.precision)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RoundFloat(%v, %d) = %v, want %v", tt.val, tt.precision, got, tt.want)
		}
	}
}
