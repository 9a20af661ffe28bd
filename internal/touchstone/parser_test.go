package touchstone

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nanoVNAExport = `! NanoVNA export
! start 14.0 MHz
# MHZ S RI R 50
14.0 0.2 0.1
14.1 0.1 0.05
14.2 0.05 0.0
`

func TestParse_OnePort(t *testing.T) {
	data, err := Parse("# MHZ S RI R 50\n14.1 0.1 0.05\n")
	require.NoError(t, err)

	require.Len(t, data.Points, 1)
	assert.Equal(t, 1, data.PortCount)
	assert.Equal(t, 50.0, data.ReferenceImpedance)
	assert.InDelta(t, 14.1e6, data.Points[0].Frequency, 1e-3)
	assert.Equal(t, 0.1, data.Points[0].S11.Real)
	assert.Equal(t, 0.05, data.Points[0].S11.Imag)
	assert.Nil(t, data.Points[0].S21)
	assert.Equal(t, "s1p", data.Format())
}

func TestParse_PreservesOrderAndDuplicates(t *testing.T) {
	data, err := Parse(nanoVNAExport + "14.2 0.05 0.0\n")
	require.NoError(t, err)

	require.Len(t, data.Points, 4)
	assert.InDelta(t, 14.0e6, data.Points[0].Frequency, 1e-3)
	assert.InDelta(t, 14.2e6, data.Points[2].Frequency, 1e-3)
	assert.InDelta(t, 14.2e6, data.Points[3].Frequency, 1e-3)
}

func TestParse_TwoPort(t *testing.T) {
	text := "# GHZ S MA R 75\n" +
		"1.0 0.5 0 0.9 90 0.9 -90 0.4 180\n" +
		"1.1 0.5 0 0.9 90 0.9 -90 0.4 180\n"

	data, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, 2, data.PortCount)
	assert.Equal(t, 75.0, data.ReferenceImpedance)
	assert.Equal(t, "s2p", data.Format())
	require.Len(t, data.Points, 2)

	p := data.Points[0]
	assert.InDelta(t, 1e9, p.Frequency, 1e-3)
	assert.InDelta(t, 0.5, p.S11.Real, 1e-9)
	require.NotNil(t, p.S21)
	require.NotNil(t, p.S12)
	require.NotNil(t, p.S22)
	assert.InDelta(t, 0.9, p.S21.Imag, 1e-9)
	assert.InDelta(t, -0.9, p.S12.Imag, 1e-9)
	assert.InDelta(t, -0.4, p.S22.Real, 1e-9)
}

func TestParse_Defaults(t *testing.T) {
	data, err := Parse("7000000 0.1 0.2\n")
	require.NoError(t, err)

	assert.Equal(t, DefaultImpedance, data.ReferenceImpedance)
	assert.Equal(t, 7000000.0, data.Points[0].Frequency)
	assert.Equal(t, 0.2, data.Points[0].S11.Imag)
}

func TestParse_FrequencyUnits(t *testing.T) {
	tests := []struct {
		option string
		want   float64
	}{
		{"# HZ S RI R 50", 2},
		{"# KHZ S RI R 50", 2e3},
		{"# MHZ S RI R 50", 2e6},
		{"# GHZ S RI R 50", 2e9},
		{"# mhz s ri r 50", 2e6},
		{"#MHz S RI R 50", 2e6},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			data, err := Parse(tt.option + "\n2 0 0\n")
			require.NoError(t, err)
			assert.Equal(t, tt.want, data.Points[0].Frequency)
		})
	}
}

func TestParse_DirectivesApplyFromTheirLineOnward(t *testing.T) {
	text := "# MHZ S RI R 50\n" +
		"10 0.5 0\n" +
		"# KHZ S MA\n" +
		"10 0.5 90\n"

	data, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, data.Points, 2)

	assert.Equal(t, 10e6, data.Points[0].Frequency)
	assert.InDelta(t, 0.5, data.Points[0].S11.Real, 1e-9)

	assert.Equal(t, 10e3, data.Points[1].Frequency)
	assert.InDelta(t, 0, data.Points[1].S11.Real, 1e-9)
	assert.InDelta(t, 0.5, data.Points[1].S11.Imag, 1e-9)

	// the second option line has no R directive
	assert.Equal(t, 50.0, data.ReferenceImpedance)
}

func TestParse_UnrecognisedOptionKeepsDefaults(t *testing.T) {
	data, err := Parse("# FOO BAR\n1 0.1 0.1\n")
	require.NoError(t, err)

	assert.Equal(t, 1.0, data.Points[0].Frequency)
	assert.Equal(t, DefaultImpedance, data.ReferenceImpedance)
}

func TestParse_MalformedLineIsSkipped(t *testing.T) {
	text := "# MHZ S RI R 50\n" +
		"14.0 0.1 0.1\n" +
		"abc 1 2\n" +
		"14.1 0.1 0.1\n"

	data, err := Parse(text)
	require.NoError(t, err)
	assert.Len(t, data.Points, 2)
}

func TestParse_PortCountFromFirstValidLine(t *testing.T) {
	text := "1 2 3 4 5\n" + // 5 columns cannot fix the geometry
		"14 0.1 0.1\n" + // fixes 1-port
		"15 0.1 0.1 0.1 0.1 0.1 0.1 0.1 0.1\n" + // 2-port row in a 1-port file
		"16 0.1\n" + // too short
		"17 0.2 0.2\n"

	data, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, 1, data.PortCount)
	require.Len(t, data.Points, 2)
	assert.Equal(t, 14.0, data.Points[0].Frequency)
	assert.Equal(t, 17.0, data.Points[1].Frequency)
}

func TestParse_CRLF(t *testing.T) {
	data, err := Parse("! comment\r\n# MHZ S RI R 50\r\n14.1 0.1 0.05\r\n\r\n")
	require.NoError(t, err)
	assert.Len(t, data.Points, 1)
}

func TestParse_NaNTokenDropsLine(t *testing.T) {
	data, err := Parse("1 NaN 0\n2 0.1 0\n")
	require.NoError(t, err)
	require.Len(t, data.Points, 1)
	assert.Equal(t, 2.0, data.Points[0].Frequency)
}

func TestParse_NonFiniteTokensDropLine(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"infinite frequency", "inf 0.1 0"},
		{"infinite magnitude", "14.1 Inf 0"},
		{"spelled out", "14.1 0.1 -Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Parse("# MHZ S MA R 50\n" + tt.line + "\n14.2 0.1 0\n")
			require.NoError(t, err)
			require.Len(t, data.Points, 1)
			assert.InDelta(t, 14.2e6, data.Points[0].Frequency, 1e-3)
		})
	}
}

func TestParse_DBOverflowKeepsPoint(t *testing.T) {
	// 10^(7000/20) overflows to +Inf; the point is kept and SWR clamps downstream
	data, err := Parse("# MHZ S DB R 50\n14.1 7000 0\n")
	require.NoError(t, err)
	require.Len(t, data.Points, 1)
	assert.True(t, math.IsInf(data.Points[0].S11.Real, 1))
}

func TestParse_ColumnMismatchAfterPortCountIsDropped(t *testing.T) {
	text := "# MHZ S RI R 50\n" +
		"14.0 0.1 0\n" +
		"14.1 0.2 0 0.9 0 0.9 0 0.3 0\n" +
		"14.2 0.3 0\n"

	data, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, 1, data.PortCount)
	require.Len(t, data.Points, 2)
	assert.InDelta(t, 14.0e6, data.Points[0].Frequency, 1e-3)
	assert.InDelta(t, 14.2e6, data.Points[1].Frequency, 1e-3)
	assert.Nil(t, data.Points[1].S21)
}

func TestParse_ZeroImpedanceIsKept(t *testing.T) {
	data, err := Parse("# MHZ S RI R 75\n14.0 0.1 0\n# R 0\n14.1 0.1 0\n")
	require.NoError(t, err)
	assert.Equal(t, 0.0, data.ReferenceImpedance)
}

func TestParse_NoData(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"comments and blanks", "! header\n\n! more\n   \n"},
		{"options only", "# MHZ S RI R 50\n"},
		{"wrong column count", "1 2\n1 2 3 4\n"},
		{"non-numeric", "freq s11re s11im\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Parse(tt.text)
			assert.Nil(t, data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNoData))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Contains(t, perr.Error(), "no usable data found in file")
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want lineKind
	}{
		{"", lineBlank},
		{"   ", lineBlank},
		{"! comment", lineComment},
		{"  !indented comment", lineComment},
		{"# MHZ S RI R 50", lineOption},
		{"1 2 3", lineData},
		{"1 2 x", lineMalformed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classify(tt.raw).kind, "line %q", tt.raw)
	}
}

func TestParseOption(t *testing.T) {
	d := parseOption("# MHZ S DB R 75")
	assert.Equal(t, 1e6, d.unit)
	assert.Equal(t, FormatDB, d.format)
	assert.Equal(t, 75.0, d.impedance)

	d = parseOption("# S RI")
	assert.Zero(t, d.unit)
	assert.Equal(t, FormatRI, d.format)
	assert.Zero(t, d.impedance)
	assert.False(t, d.hasImpedance)

	d = parseOption("# MHZ S RI R 0")
	assert.True(t, d.hasImpedance)
	assert.Zero(t, d.impedance)
}

func TestParseOption_FormatPriority(t *testing.T) {
	tests := []struct {
		option string
		want   Format
	}{
		{"# MHZ S MA RI", FormatRI},
		{"# MHZ S DB MA", FormatMA},
		{"# MHZ S DB RI MA", FormatRI},
		{"# MHZ S DB", FormatDB},
		{"# MHZ S", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseOption(tt.option).format, "option %q", tt.option)
	}
}
