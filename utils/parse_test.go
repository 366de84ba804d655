package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Unsigned(t *testing.T) {
	tests := []struct {
		in      string
		want    uint
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "200", want: 200},
		{in: "4294967295", want: 4294967295},
		{in: "4294967296", wantErr: true},
		{in: "", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "+1", wantErr: true},
		{in: "1.0", wantErr: true},
		{in: " 5", wantErr: true},
		{in: "12a", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUnsigned(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Float(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "12.3", want: 12.3},
		{in: "-90", want: -90},
		{in: "  7", want: 7},
		{in: ".5", want: 0.5},
		{in: "5.", want: 5},
		{in: "12.3.4", wantErr: true},
		{in: "1-2", wantErr: true},
		{in: "--1", wantErr: true},
		{in: "1e5", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "-", wantErr: true},
		{in: ".", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFloat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
