// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package space converts colors between trichromatic color spaces, chaining
// every conversion through CIEXYZ as the hub space. It backs
// [colors.ConvertSpace], which is the only place a caller needs to think
// about color spaces at all.
package space

import "github.com/glimmerui/glimmer/math32"

// Space identifies a trichromatic color space. Values run 0-1 for the
// gamma-encoded and linear RGB spaces and LMS; CIEXYZ and CIELAB/CIELCH
// follow the conventional 0-100 D65 scale; OKLAB/OKLCH follow the
// conventional 0-1 L scale.
type Space int

const (
	SRGBLinear Space = iota
	SRGBGamma
	DisplayP3Linear
	DisplayP3Gamma
	CIEXYZ
	CIELAB
	CIELCH
	OKLAB
	OKLCH
	LMS
)

// Trichromatic is a 3-component color value tagged with the [Space] it is
// expressed in.
type Trichromatic struct {
	Space Space
	V     [3]float32
}

// New returns a [Trichromatic] in sp with components v.
func New(sp Space, v [3]float32) Trichromatic {
	return Trichromatic{Space: sp, V: v}
}

// next returns the color space one hop closer to CIEXYZ from sp.
func next(sp Space) Space {
	switch sp {
	case CIELCH:
		return CIELAB
	case OKLCH:
		return OKLAB
	case OKLAB:
		return LMS
	case SRGBGamma:
		return SRGBLinear
	case DisplayP3Gamma:
		return DisplayP3Linear
	default:
		return CIEXYZ
	}
}

// step converts c one hop along the chain towards CIEXYZ.
func step(c Trichromatic) Trichromatic {
	switch c.Space {
	case SRGBLinear:
		return New(CIEXYZ, srgbLinToXYZ(c.V))
	case SRGBGamma:
		return New(SRGBLinear, gammaToLinear(c.V))
	case DisplayP3Linear:
		return New(CIEXYZ, p3LinToXYZ(c.V))
	case DisplayP3Gamma:
		return New(DisplayP3Linear, gammaToLinear(c.V))
	case CIELAB:
		return New(CIEXYZ, labToXYZ(c.V))
	case CIELCH:
		return New(CIELAB, lchToLab(c.V))
	case LMS:
		return New(CIEXYZ, lmsToXYZ(c.V))
	case OKLAB:
		return New(LMS, oklabToLMS(c.V))
	case OKLCH:
		return New(OKLAB, lchToLab(c.V))
	default:
		return c
	}
}

// stepFromXYZOne converts cur (in CIEXYZ or an intermediate space) one hop
// towards dst.
func stepFromXYZOne(cur Trichromatic, dst Space) Trichromatic {
	switch dst {
	case SRGBLinear:
		return New(SRGBLinear, xyzToSRGBLin(cur.V))
	case SRGBGamma:
		return New(SRGBGamma, linearToGamma(cur.V))
	case DisplayP3Linear:
		return New(DisplayP3Linear, xyzToP3Lin(cur.V))
	case DisplayP3Gamma:
		return New(DisplayP3Gamma, linearToGamma(cur.V))
	case CIELAB:
		return New(CIELAB, xyzToLab(cur.V))
	case CIELCH:
		return New(CIELCH, labToLCH(cur.V))
	case LMS:
		return New(LMS, xyzToLMS(cur.V))
	case OKLAB:
		return New(OKLAB, lmsToOKLab(cur.V))
	case OKLCH:
		return New(OKLCH, labToLCH(cur.V))
	default:
		return cur
	}
}

// Convert converts c to dst, routing through CIEXYZ unless c.Space == dst.
func Convert(c Trichromatic, dst Space) Trichromatic {
	if c.Space == dst {
		return c
	}
	return fromXYZ(toXYZ(c), dst)
}

func toXYZ(c Trichromatic) Trichromatic {
	for c.Space != CIEXYZ {
		c = step(c)
	}
	return c
}

func fromXYZ(xyz Trichromatic, dst Space) Trichromatic {
	if dst == CIEXYZ {
		return xyz
	}
	// Build the chain of spaces between dst and CIEXYZ, then walk it
	// backwards from CIEXYZ converting one hop at a time.
	chain := []Space{dst}
	for chain[len(chain)-1] != CIEXYZ {
		n := next(chain[len(chain)-1])
		if n == chain[len(chain)-1] {
			break
		}
		chain = append(chain, n)
	}
	cur := xyz
	for i := len(chain) - 2; i >= 0; i-- {
		cur = stepFromXYZOne(cur, chain[i])
	}
	return cur
}

// -- sRGB <-> linear --

func gammaToLinear(v [3]float32) [3]float32 {
	return [3]float32{srgbGammaToLinearComp(v[0]), srgbGammaToLinearComp(v[1]), srgbGammaToLinearComp(v[2])}
}

func linearToGamma(v [3]float32) [3]float32 {
	return [3]float32{srgbLinearToGammaComp(v[0]), srgbLinearToGammaComp(v[1]), srgbLinearToGammaComp(v[2])}
}

func srgbGammaToLinearComp(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

func srgbLinearToGammaComp(c float32) float32 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math32.Pow(c, 1/2.4) - 0.055
}

// -- sRGB linear <-> CIEXYZ (D65, XYZ scaled 0-100) --

func srgbLinToXYZ(v [3]float32) [3]float32 {
	r, g, b := v[0], v[1], v[2]
	return [3]float32{
		41.24*r + 35.76*g + 18.05*b,
		21.26*r + 71.52*g + 7.22*b,
		1.93*r + 11.92*g + 95.05*b,
	}
}

func xyzToSRGBLin(v [3]float32) [3]float32 {
	x, y, z := v[0]/100, v[1]/100, v[2]/100
	return [3]float32{
		3.2406*x - 1.5372*y - 0.4986*z,
		-0.9689*x + 1.8758*y + 0.0415*z,
		0.0557*x - 0.2040*y + 1.0570*z,
	}
}

// -- DisplayP3 linear <-> CIEXYZ (D65, XYZ scaled 0-100) --

func p3LinToXYZ(v [3]float32) [3]float32 {
	r, g, b := v[0], v[1], v[2]
	return [3]float32{
		48.6571*r + 26.5668*g + 19.8217*b,
		22.8975*r + 69.1739*g + 7.9287*b,
		4.5113*g + 104.3944*b,
	}
}

func xyzToP3Lin(v [3]float32) [3]float32 {
	x, y, z := v[0], v[1], v[2]
	return [3]float32{
		0.02493498*x - 0.00931385*y - 0.0040271*z,
		-0.0082949*x + 0.01762664*y + 0.00023625*z,
		0.00035846*x - 0.00076172*y + 0.00956885*z,
	}
}

// -- CIEXYZ <-> CIELAB (D65) --

var d65 = [3]float32{95.047, 100.000, 108.883}

func xyzToLab(v [3]float32) [3]float32 {
	fx := labF(v[0] / d65[0])
	fy := labF(v[1] / d65[1])
	fz := labF(v[2] / d65[2])
	return [3]float32{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

func labToXYZ(v [3]float32) [3]float32 {
	fy := (v[0] + 16) / 116
	fx := fy + v[1]/500
	fz := fy - v[2]/200
	return [3]float32{labFInv(fx) * d65[0], labFInv(fy) * d65[1], labFInv(fz) * d65[2]}
}

func labF(t float32) float32 {
	if t > 0.008856 {
		return math32.Cbrt(t)
	}
	return 7.787*t + 16.0/116
}

func labFInv(t float32) float32 {
	cube := t * t * t
	if cube > 216.0/24389 {
		return cube
	}
	return (t - 16.0/116) / (24389.0 / 27 / 116)
}

// -- CIELAB <-> CIELCH, OKLAB <-> OKLCH (shared polar conversion) --

func labToLCH(v [3]float32) [3]float32 {
	return [3]float32{
		v[0],
		math32.Hypot(v[1], v[2]),
		fixHue(math32.Atan2(v[2], v[1]) * (180 / math32.Pi)),
	}
}

func lchToLab(v [3]float32) [3]float32 {
	return [3]float32{
		v[0],
		math32.Cos(v[2]*math32.Pi/180) * v[1],
		math32.Sin(v[2]*math32.Pi/180) * v[1],
	}
}

func fixHue(v float32) float32 {
	if v < 0 {
		return 360 + v
	}
	return v
}

// -- CIEXYZ <-> LMS (Hunt-Pointer-Estevez-derived, XYZ scaled 0-100, LMS 0-1) --

func xyzToLMS(v [3]float32) [3]float32 {
	x, y, z := v[0], v[1], v[2]
	return [3]float32{
		0.008189330101*x + 0.003618667424*y - 0.001288597137*z,
		0.000329845436*x + 0.009293118715*y + 0.000361456387*z,
		0.000482003018*x + 0.002643662691*y + 0.006338517070*z,
	}
}

func lmsToXYZ(v [3]float32) [3]float32 {
	l, m, s := v[0], v[1], v[2]
	return [3]float32{
		122.70138511*l - 55.77999806*m + 28.12561490*s,
		-4.05801784*l + 111.22568696*m - 7.16766787*s,
		-7.63812845*l - 42.14819784*m + 158.61632204*s,
	}
}

// -- LMS <-> OKLAB --

func lmsToOKLab(v [3]float32) [3]float32 {
	l0 := math32.Cbrt(v[0])
	m0 := math32.Cbrt(v[1])
	s0 := math32.Cbrt(v[2])
	return [3]float32{
		0.2104542553*l0 + 0.7936177850*m0 - 0.0040720468*s0,
		1.9779984951*l0 - 2.4285922050*m0 + 0.4505937099*s0,
		0.0259040371*l0 + 0.7827717662*m0 - 0.8086757660*s0,
	}
}

func oklabToLMS(v [3]float32) [3]float32 {
	l0 := v[0] + 0.3963377774*v[1] + 0.2158037573*v[2]
	m0 := v[0] - 0.1055613458*v[1] - 0.0638541728*v[2]
	s0 := v[0] - 0.0894841775*v[1] - 1.2914855480*v[2]
	return [3]float32{l0 * l0 * l0, m0 * m0 * m0, s0 * s0 * s0}
}
