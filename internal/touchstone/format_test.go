package touchstone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		v1, v2   float64
		format   Format
		wantReal float64
		wantImag float64
	}{
		{name: "RI passes through", v1: 0.3, v2: -0.4, format: FormatRI, wantReal: 0.3, wantImag: -0.4},
		{name: "MA unit magnitude zero angle", v1: 1, v2: 0, format: FormatMA, wantReal: 1, wantImag: 0},
		{name: "MA quarter turn", v1: 0.5, v2: 90, format: FormatMA, wantReal: 0, wantImag: 0.5},
		{name: "MA half turn", v1: 0.2, v2: 180, format: FormatMA, wantReal: -0.2, wantImag: 0},
		{name: "DB zero dB is unit magnitude", v1: 0, v2: 0, format: FormatDB, wantReal: 1, wantImag: 0},
		{name: "DB minus 20 dB", v1: -20, v2: 0, format: FormatDB, wantReal: 0.1, wantImag: 0},
		{name: "DB with angle", v1: -6.020599913, v2: -90, format: FormatDB, wantReal: 0, wantImag: -0.5},
		{name: "unknown format passes through", v1: 2, v2: 3, format: Format("XX"), wantReal: 2, wantImag: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.v1, tt.v2, tt.format)
			assert.InDelta(t, tt.wantReal, got.Real, 1e-9)
			assert.InDelta(t, tt.wantImag, got.Imag, 1e-9)
		})
	}
}
