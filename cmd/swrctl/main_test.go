package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/swrscope/pkg/models"
)

const dipoleFile = `! 20m dipole
# MHZ S RI R 50
14.00 0.30 0
14.10 0.10 0
14.20 0.05 0
14.30 0.20 0
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dipole.s1p")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeFile(t, dipoleFile)

	out, err := run(t, "analyze", path)
	require.NoError(t, err)

	assert.Contains(t, out, "dipole.s1p: 1-port (s1p), 4 points")
	assert.Contains(t, out, "20m")
	assert.Contains(t, out, "1.11")
	assert.Contains(t, out, "Recommended: 20m")
}

func TestAnalyzeCommand_JSONWithShift(t *testing.T) {
	path := writeFile(t, dipoleFile)

	out, err := run(t, "analyze", "--json", "--shift", "20m=1", path)
	require.NoError(t, err)

	var body struct {
		Analysis models.AnalysisReport `json:"analysis"`
		Shift    models.ShiftReport    `json:"shift"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, 4, body.Analysis.PointCount)
	require.Len(t, body.Shift.Results, 1)
	assert.Equal(t, 1.0, body.Shift.Results[0].ShiftPercent)
	// 14.0 and 14.1 MHz fall below the band edge
	assert.Equal(t, 2, body.Shift.Results[0].Shifted.InBand)
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(path string) []string
	}{
		{"missing file", func(string) []string { return []string{"analyze", "does-not-exist.s1p"} }},
		{"bad shift", func(p string) []string { return []string{"analyze", "--shift", "20m", p} }},
		{"bad shift value", func(p string) []string { return []string{"analyze", "--shift", "20m=abc", p} }},
		{"unknown band", func(p string) []string { return []string{"analyze", "--band", "11m", p} }},
		{"no args", func(string) []string { return []string{"analyze"} }},
	}

	path := writeFile(t, dipoleFile)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args(path)...)
			assert.Error(t, err)
		})
	}
}

func TestParseShifts(t *testing.T) {
	shifts, err := parseShifts([]string{"20m=2.5", " 40m = -1 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"20m": 2.5, "40m": -1}, shifts)

	shifts, err = parseShifts(nil)
	require.NoError(t, err)
	assert.Nil(t, shifts)

	_, err = parseShifts([]string{"=2"})
	assert.Error(t, err)
}

func TestBandsCommand(t *testing.T) {
	out, err := run(t, "bands")
	require.NoError(t, err)

	assert.Contains(t, out, "160m")
	assert.Contains(t, out, "70cm")
	assert.Contains(t, out, "14.00 MHz")
}
