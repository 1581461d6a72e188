package deisotope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParametersValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Parameters)
		wantErr bool
	}{
		{"defaults are valid", func(p *Parameters) {}, false},
		{"missing suffix", func(p *Parameters) { p.Suffix = "" }, true},
		{"negative m/z tolerance", func(p *Parameters) { p.MZTolerance = -0.01 }, true},
		{"negative RT tolerance", func(p *Parameters) { p.RTTolerance = -1 }, true},
		{"zero maximum charge", func(p *Parameters) { p.MaximumCharge = 0 }, true},
		{"zero tolerances are allowed", func(p *Parameters) { p.MZTolerance = 0; p.RTTolerance = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParametersString(t *testing.T) {
	p := Parameters{
		Suffix:         "deisotoped",
		MZTolerance:    0.05,
		RTTolerance:    0.1,
		MonotonicShape: true,
		MaximumCharge:  3,
		AutoRemove:     false,
	}

	want := "suffix=deisotoped, mzTolerance=0.05, rtTolerance=0.1, monotonicShape=true, maximumCharge=3, autoRemove=false"
	require.Equal(t, want, p.String())
}
