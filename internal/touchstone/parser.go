// Package touchstone reads 1-port and 2-port Touchstone (.s1p/.s2p) files.
//
// Option lines apply to the data lines that follow them. Lines that cannot
// be read as numbers are dropped without error, so noisy exports from
// network analysers still parse as long as some data is usable.
package touchstone

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/RMahshie/swrscope/pkg/models"
)

// DefaultImpedance is the reference impedance used when the file declares none
const DefaultImpedance = 50.0

// ErrNoData is matched by every ParseError
var ErrNoData = errors.New("no usable data found in file")

// ParseError is returned when a file yields no measurement points
type ParseError struct {
	Lines   int // lines scanned
	Dropped int // data lines discarded
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s (%d lines scanned, %d dropped)", ErrNoData, e.Reason, e.Lines, e.Dropped)
}

// Is reports whether target is ErrNoData
func (e *ParseError) Is(target error) bool {
	return target == ErrNoData
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineOption
	lineData
	lineMalformed
)

// directive holds the settings found on one option line.
// Zero values mean the line did not mention that setting; an explicit
// R 0 is marked by hasImpedance.
type directive struct {
	unit         float64
	format       Format
	impedance    float64
	hasImpedance bool
}

type line struct {
	kind   lineKind
	opt    directive
	values []float64
}

var impedancePattern = regexp.MustCompile(`\bR\s+(\d+)`)

func classify(raw string) line {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return line{kind: lineBlank}
	case strings.HasPrefix(s, "!"):
		return line{kind: lineComment}
	case strings.HasPrefix(s, "#"):
		return line{kind: lineOption, opt: parseOption(s)}
	}

	fields := strings.Fields(s)
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return line{kind: lineMalformed}
		}
		values = append(values, v)
	}
	return line{kind: lineData, values: values}
}

func parseOption(s string) directive {
	upper := strings.ToUpper(strings.TrimPrefix(s, "#"))

	var d directive
	formats := make(map[Format]bool, 3)
	for _, tok := range strings.Fields(upper) {
		switch tok {
		case "GHZ":
			d.unit = 1e9
		case "MHZ":
			d.unit = 1e6
		case "KHZ":
			d.unit = 1e3
		case "HZ":
			d.unit = 1
		case "RI", "MA", "DB":
			formats[Format(tok)] = true
		}
	}
	// RI wins over MA, MA over DB, when a line names several
	for _, f := range []Format{FormatRI, FormatMA, FormatDB} {
		if formats[f] {
			d.format = f
			break
		}
	}

	if m := impedancePattern.FindStringSubmatch(upper); m != nil {
		if r, err := strconv.Atoi(m[1]); err == nil {
			d.impedance = float64(r)
			d.hasImpedance = true
		}
	}
	return d
}

// columns returns the number of values on a data line for the port count
func columns(ports int) int {
	if ports == 2 {
		return 9
	}
	return 3
}

type parser struct {
	unit      float64
	format    Format
	impedance float64
	ports     int
	points    []models.MeasurementPoint
	lines     int
	dropped   int
}

func (p *parser) apply(d directive) {
	if d.unit != 0 {
		p.unit = d.unit
	}
	if d.format != "" {
		p.format = d.format
	}
	if d.hasImpedance {
		p.impedance = d.impedance
	}
}

func (p *parser) data(values []float64) {
	if p.ports == 0 {
		switch len(values) {
		case 3:
			p.ports = 1
		case 9:
			p.ports = 2
		default:
			p.dropped++
			return
		}
	}
	if len(values) != columns(p.ports) {
		p.dropped++
		return
	}

	pt := models.MeasurementPoint{
		Frequency: values[0] * p.unit,
		S11:       Convert(values[1], values[2], p.format),
	}
	if p.ports == 2 {
		s21 := Convert(values[3], values[4], p.format)
		s12 := Convert(values[5], values[6], p.format)
		s22 := Convert(values[7], values[8], p.format)
		pt.S21, pt.S12, pt.S22 = &s21, &s12, &s22
	}
	p.points = append(p.points, pt)
}

// Parse reads Touchstone text into measurement points.
// The port count is fixed by the first data line with 3 (1-port) or 9
// (2-port) columns. A *ParseError is returned when nothing usable is found.
func Parse(text string) (*models.ParsedNetworkData, error) {
	p := &parser{
		unit:      1,
		format:    FormatRI,
		impedance: DefaultImpedance,
	}

	for _, raw := range strings.Split(text, "\n") {
		p.lines++
		l := classify(raw)
		switch l.kind {
		case lineOption:
			p.apply(l.opt)
		case lineData:
			p.data(l.values)
		case lineMalformed:
			p.dropped++
		}
	}

	if p.ports == 0 {
		return nil, &ParseError{Lines: p.lines, Dropped: p.dropped, Reason: "no data line with 3 or 9 columns"}
	}
	if len(p.points) == 0 {
		return nil, &ParseError{Lines: p.lines, Dropped: p.dropped, Reason: "no measurement points"}
	}

	return &models.ParsedNetworkData{
		Points:             p.points,
		PortCount:          p.ports,
		ReferenceImpedance: p.impedance,
	}, nil
}
