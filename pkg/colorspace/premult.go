// Package colorspace implements the fixed alpha-association pass applied
// to decoded pixels: linearize gamma-encoded RGB, multiply by alpha,
// re-apply the gamma encoding. Decoders emit sRGB with unassociated
// alpha; downstream consumers expect associated alpha.
package colorspace

import "math"

// DefaultGamma is the gamma exponent used to linearize sRGB-like data.
const DefaultGamma = 2.2

// lut256 caches the linearization of the 256 8-bit code values for the
// default gamma.
var lut256 [256]float64

func init() {
	for i := range lut256 {
		lut256[i] = math.Pow(float64(i)/255.0, DefaultGamma)
	}
}

// Premultiply converts interleaved RGBA8 pixel data in place from
// unassociated to associated alpha. RGB channels are linearized with
// the given gamma, scaled by alpha and re-encoded.
//
// Fully opaque pixels pass through unchanged; fully transparent pixels
// have their RGB forced to zero.
func Premultiply(pix []byte, gamma float64) {
	if gamma <= 0 {
		gamma = DefaultGamma
	}
	toLinear := linearizer(gamma)
	inv := 1.0 / gamma

	for i := 0; i+3 < len(pix); i += 4 {
		a := pix[i+3]
		switch a {
		case 0xff:
			continue
		case 0x00:
			pix[i] = 0
			pix[i+1] = 0
			pix[i+2] = 0
		default:
			af := float64(a) / 255.0
			for c := i; c < i+3; c++ {
				lin := toLinear(pix[c]) * af
				pix[c] = encode(math.Pow(lin, inv))
			}
		}
	}
}

func linearizer(gamma float64) func(byte) float64 {
	if gamma == DefaultGamma {
		return func(v byte) float64 { return lut256[v] }
	}
	return func(v byte) float64 {
		return math.Pow(float64(v)/255.0, gamma)
	}
}

func encode(v float64) byte {
	s := math.Round(v * 255.0)
	if s <= 0 {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return byte(s)
}
