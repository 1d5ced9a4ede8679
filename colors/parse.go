// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/glimmerui/glimmer/colors/space"
	"github.com/glimmerui/glimmer/math32"
)

// Parse returns a [Color] from the given CSS-like string. It accepts
// standard color names, #hex, rgb()/rgba(), hsl()/hsla(), "none"/"off"/
// "transparent", and the transformations documented on [Transform]. The
// transformations apply relative to base, defaulting to [Transparent] if
// base is not given.
func Parse(str string, base ...color.RGBA) (Color[uint8], error) {
	if len(str) == 0 {
		return Color[uint8]{}, nil
	}
	lstr := strings.ToLower(strings.TrimSpace(str))
	switch {
	case lstr[0] == '#':
		return parseHex(lstr)
	case strings.HasPrefix(lstr, "rgb("), strings.HasPrefix(lstr, "rgba("):
		return parseRGB(lstr)
	case strings.HasPrefix(lstr, "hsl("), strings.HasPrefix(lstr, "hsla("):
		return parseHSL(lstr)
	}

	var bc color.RGBA = Transparent
	if len(base) > 0 {
		bc = base[0]
	}

	if hidx := strings.Index(lstr, "-"); hidx > 0 {
		cmd := lstr[:hidx]
		valstr := lstr[hidx+1:]
		if cmd == "blend" {
			return parseBlend(valstr, bc)
		}
		val64, err := strconv.ParseFloat(valstr, 32)
		if err == nil {
			if c, ok := Transform(cmd, float32(val64), bc); ok {
				return c, nil
			}
		}
	}

	switch lstr {
	case "none", "off", "transparent":
		return Color[uint8]{}, nil
	case "currentcolor":
		return fromRGBA(bc), nil
	case "inverse":
		c, _ := Transform("inverse", 0, bc)
		return c, nil
	default:
		rgba, ok := Map[lstr]
		if !ok {
			return Color[uint8]{}, fmt.Errorf("colors.Parse: name not found: %q", str)
		}
		return fromRGBA(rgba), nil
	}
}

func fromRGBA(c color.RGBA) Color[uint8] {
	return Color[uint8]{R: c.R, G: c.G, B: c.B, A: c.A, Gamma: SRGB}
}

func parseHex(hex string) (Color[uint8], error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	switch len(hex) {
	case 3:
		fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return Color[uint8]{}, fmt.Errorf("colors.Parse: could not process hex %q", hex)
	}
	return Color[uint8]{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a), Gamma: SRGB}, nil
}

func parseRGB(lstr string) (Color[uint8], error) {
	val := strings.Trim(strings.TrimRight(lstr[strings.Index(lstr, "(")+1:], ")"), "%")
	var r, g, b, a int
	a = 255
	if strings.Count(val, ",") == 3 {
		fmt.Sscanf(val, "%d,%d,%d,%d", &r, &g, &b, &a)
	} else {
		fmt.Sscanf(val, "%d,%d,%d", &r, &g, &b)
	}
	return Color[uint8]{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a), Gamma: SRGB}, nil
}

func parseHSL(lstr string) (Color[uint8], error) {
	val := strings.ReplaceAll(strings.TrimRight(lstr[strings.Index(lstr, "(")+1:], ")"), "%", "")
	var h, s, l, a int
	a = 255
	if strings.Count(val, ",") == 3 {
		fmt.Sscanf(val, "%d,%d,%d,%d", &h, &s, &l, &a)
	} else {
		fmt.Sscanf(val, "%d,%d,%d", &h, &s, &l)
	}
	r, g, b := hslToRGB(float32(h), float32(s)/100, float32(l)/100)
	return Color[uint8]{R: r, G: g, B: b, A: uint8(a), Gamma: SRGB}, nil
}

func parseBlend(valstr string, base color.RGBA) (Color[uint8], error) {
	clridx := strings.Index(valstr, "-")
	if clridx < 0 {
		return Color[uint8]{}, fmt.Errorf("colors.Parse: blend spec must be blend-PCT-color, got blend-%s", valstr)
	}
	pctstr := valstr[:clridx]
	pct64, err := strconv.ParseFloat(pctstr, 32)
	if err != nil {
		return Color[uint8]{}, fmt.Errorf("colors.Parse: invalid blend percent %q: %w", pctstr, err)
	}
	other, err := Parse(valstr[clridx+1:], base)
	if err != nil {
		return Color[uint8]{}, err
	}
	return Mix(float32(pct64)/100, fromRGBA(base), other, Straight), nil
}

// Transform applies one of the named CSS-style color transformations to
// base and returns the result along with whether cmd was recognized. Chroma
// and hue manipulations ("saturate", "desaturate", "spin") operate in
// CIELCH, lightness manipulations ("lighten", "darken") in CIELAB's L
// channel, matching how the teacher's equivalent transforms operate in a
// perceptual color space (HCT) rather than naively scaling sRGB channels.
func Transform(cmd string, val float32, base color.RGBA) (Color[uint8], bool) {
	bc := fromRGBA(base)
	switch cmd {
	case "lighten":
		return lchAdjust(bc, val, 0, 0), true
	case "darken":
		return lchAdjust(bc, -val, 0, 0), true
	case "saturate":
		return lchAdjust(bc, 0, val, 0), true
	case "desaturate":
		return lchAdjust(bc, 0, -val, 0), true
	case "spin":
		return lchAdjust(bc, 0, 0, val), true
	case "clearer":
		return withAlpha(bc, -val), true
	case "opaquer":
		return withAlpha(bc, val), true
	case "inverse":
		return Color[uint8]{R: 255 - bc.R, G: 255 - bc.G, B: 255 - bc.B, A: bc.A, Gamma: SRGB}, true
	default:
		return Color[uint8]{}, false
	}
}

func lchAdjust(c Color[uint8], dl, dc, dh float32) Color[uint8] {
	tri := c.Trichromatic(false)
	lch := space.Convert(tri, space.CIELCH)
	lch.V[0] = math32.Clamp(lch.V[0]+dl, 0, 100)
	lch.V[1] = math32.Max(0, lch.V[1]+dc)
	lch.V[2] = math32.WrapMax(lch.V[2]+dh, 360)
	back := space.Convert(lch, tri.Space)
	return Color[uint8]{
		R:     fromFloat01[uint8](back.V[0]),
		G:     fromFloat01[uint8](back.V[1]),
		B:     fromFloat01[uint8](back.V[2]),
		A:     c.A,
		Gamma: c.Gamma,
	}
}

func withAlpha(c Color[uint8], deltaPct float32) Color[uint8] {
	a := math32.Clamp(toFloat01(c.A)+deltaPct/100, 0, 1)
	c.A = fromFloat01[uint8](a)
	return c
}

// hslToRGB converts h∈[0,360), s,l∈[0,1] to 8-bit sRGB-gamma channels.
func hslToRGB(h, s, l float32) (r, g, b uint8) {
	if s == 0 {
		v := fromFloat01[uint8](l)
		return v, v, v
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360
	return fromFloat01[uint8](hueToRGB(p, q, hk+1.0/3)),
		fromFloat01[uint8](hueToRGB(p, q, hk)),
		fromFloat01[uint8](hueToRGB(p, q, hk-1.0/3))
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
