package models

import "math"

// Complex is a complex S-parameter value in rectangular form
type Complex struct {
	Real float64 `json:"real" doc:"Real part"`
	Imag float64 `json:"imag" doc:"Imaginary part"`
}

// Abs returns the magnitude of the value
func (c Complex) Abs() float64 {
	return math.Sqrt(c.Real*c.Real + c.Imag*c.Imag)
}

// MeasurementPoint is one row of network-analyzer data
type MeasurementPoint struct {
	Frequency float64  `json:"frequency" doc:"Frequency in Hz"`
	S11       Complex  `json:"s11" doc:"Input reflection coefficient"`
	S21       *Complex `json:"s21,omitempty" doc:"Forward transmission (2-port only)"`
	S12       *Complex `json:"s12,omitempty" doc:"Reverse transmission (2-port only)"`
	S22       *Complex `json:"s22,omitempty" doc:"Output reflection coefficient (2-port only)"`
}

// ParsedNetworkData is the result of parsing a Touchstone file
type ParsedNetworkData struct {
	Points             []MeasurementPoint `json:"points"`
	PortCount          int                `json:"port_count"`
	ReferenceImpedance float64            `json:"reference_impedance"`
}

// Format returns the conventional file suffix for the detected port count
func (d *ParsedNetworkData) Format() string {
	if d.PortCount == 2 {
		return "s2p"
	}
	return "s1p"
}
