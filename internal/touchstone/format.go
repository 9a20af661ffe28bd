package touchstone

import (
	"math"

	"github.com/RMahshie/swrscope/pkg/models"
)

// Format is the number-pair representation declared on the option line
type Format string

const (
	// FormatRI is real / imaginary
	FormatRI Format = "RI"
	// FormatMA is linear magnitude / angle in degrees
	FormatMA Format = "MA"
	// FormatDB is magnitude in dB / angle in degrees
	FormatDB Format = "DB"
)

// Convert turns a value pair in the given representation into rectangular form.
// Unknown representations are passed through unchanged.
func Convert(v1, v2 float64, f Format) models.Complex {
	switch f {
	case FormatMA:
		return polar(v1, v2)
	case FormatDB:
		return polar(math.Pow(10, v1/20), v2)
	default:
		return models.Complex{Real: v1, Imag: v2}
	}
}

func polar(mag, deg float64) models.Complex {
	theta := deg * math.Pi / 180
	return models.Complex{
		Real: mag * math.Cos(theta),
		Imag: mag * math.Sin(theta),
	}
}
