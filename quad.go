// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

// ChopQuadAt splits the quadratic src at parameter t, writing the 5
// points of the two resulting quadratics (sharing dst[2] as the
// junction) into dst.
func ChopQuadAt(src [3]Point, t TValue, dst *[5]Point) {
	tf := float32(t)
	p01 := src[0].Lerp(src[1], tf)
	p12 := src[1].Lerp(src[2], tf)
	dst[0] = src[0]
	dst[1] = p01
	dst[2] = p01.Lerp(p12, tf)
	dst[3] = p12
	dst[4] = src[2]
}

// ChopQuadAtXExtrema chops src at its x-extremum, if it has one,
// flattening the junction's x coordinate across the two halves. Returns
// the number of splits (0 or 1).
func ChopQuadAtXExtrema(src [3]Point, dst *[5]Point) int {
	return chopQuadAtExtrema(src, dst, true)
}

// ChopQuadAtYExtrema is ChopQuadAtXExtrema for the y axis.
func ChopQuadAtYExtrema(src [3]Point, dst *[5]Point) int {
	return chopQuadAtExtrema(src, dst, false)
}

func chopQuadAtExtrema(src [3]Point, dst *[5]Point, xAxis bool) int {
	coord := func(p Point) float32 {
		if xAxis {
			return p.X
		}
		return p.Y
	}
	setCoord := func(p *Point, v float32) {
		if xAxis {
			p.X = v
		} else {
			p.Y = v
		}
	}

	a, b, c := coord(src[0]), coord(src[1]), coord(src[2])

	ab := a - b
	bc := b - c
	if ab < 0 {
		bc = -bc
	}
	notMonotonic := ab == 0 || bc < 0
	if !notMonotonic {
		dst[0], dst[1], dst[2] = src[0], src[1], src[2]
		return 0
	}

	t, ok := UnitDivide(a-b, a-2*b+c)
	if !ok {
		// Can't find a valid split point: snap b to whichever endpoint
		// is closer in the chopped axis and leave the curve as a single
		// (now monotonic-by-construction) piece.
		snapped := src[1]
		if absF32(a-b) < absF32(c-b) {
			setCoord(&snapped, a)
		} else {
			setCoord(&snapped, c)
		}
		dst[0], dst[1], dst[2] = src[0], snapped, src[2]
		return 0
	}

	ChopQuadAt(src, t, dst)
	setCoord(&dst[1], coord(dst[2]))
	setCoord(&dst[3], coord(dst[2]))
	return 1
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// EvalQuadAt evaluates the quadratic at t.
func EvalQuadAt(src [3]Point, t NormalizedT) Point {
	return NewQuadCoeff(src[0], src[1], src[2]).Eval(float32(t))
}

// EvalQuadAt2 evaluates the quadratic's position and tangent at t.
func EvalQuadAt2(src [3]Point, t NormalizedT) (pt, tangent Point) {
	coeff := NewQuadCoeff(src[0], src[1], src[2])
	tf := float32(t)
	pt = coeff.Eval(tf)
	tangent = coeff.A.Mul(2 * tf).Add(coeff.B)
	if tf == 0 && src[0] == src[1] || tf == 1 && src[1] == src[2] {
		tangent = src[2].Sub(src[0])
	}
	return pt, tangent
}

// FindQuadMaxCurvature returns the parameter of maximum curvature of
// the quadratic, clamped to [0,1].
func FindQuadMaxCurvature(src [3]Point) NormalizedT {
	a := src[1].Sub(src[0])
	b := src[0].Sub(src[1].Mul(2)).Add(src[2])

	numer := -a.Dot(b)
	denom := b.Dot(b)

	if numer <= 0 {
		return 0
	}
	if numer >= denom {
		return 1
	}
	return NewNormalizedT(numer / denom)
}
