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

import "math"

// Conic is a rational quadratic Bézier curve (a weighted quadratic): at
// W == 1 it is an ordinary quadratic, and for 0 < W < 1 or W > 1 it can
// represent a true circular or elliptical arc exactly.
type Conic struct {
	Pts [3]Point
	W   float32
}

// NewConic builds a Conic, guarding against a non-finite or non-positive
// weight by falling back to W=1 (an ordinary quadratic).
func NewConic(p0, p1, p2 Point, w float32) Conic {
	if !isFiniteF32(w) || w <= 0 {
		w = 1
	}
	return Conic{Pts: [3]Point{p0, p1, p2}, W: w}
}

// EvalAt evaluates the conic at t:
//
//	P(t) = ((1-t)^2 P0 + 2(1-t)t W P1 + t^2 P2) / ((1-t)^2 + 2(1-t)t W + t^2)
func (c Conic) EvalAt(t float32) Point {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	tw := 2 * t * u * c.W

	denom := u2 + tw + t2
	num := c.Pts[0].Mul(u2).Add(c.Pts[1].Mul(tw)).Add(c.Pts[2].Mul(t2))
	return num.Mul(1 / denom)
}

// EvalTangentAt evaluates the conic's tangent direction at t. The
// degenerate-endpoint fallback mirrors the quadratic and cubic cases:
// at a repeated endpoint control point, the chord p2-p0 is used instead
// of the (zero) derivative.
func (c Conic) EvalTangentAt(t float32) Point {
	if t == 0 && c.Pts[0] == c.Pts[1] || t == 1 && c.Pts[1] == c.Pts[2] {
		return c.Pts[2].Sub(c.Pts[0])
	}

	p20 := c.Pts[2].Sub(c.Pts[0])
	p10 := c.Pts[1].Sub(c.Pts[0])

	C := p10.Mul(c.W)
	A := p20.Mul(c.W).Sub(p20)
	B := p20.Sub(C.Mul(2))

	return A.Mul(t).Add(B).Mul(t).Add(C)
}

// Chop subdivides the conic at t=0.5, returning two conics covering
// [0,0.5] and [0.5,1] that together trace the same curve.
func (c Conic) Chop() (Conic, Conic) {
	scale := float32(1 / (1 + float64(c.W)))
	newW := float32(math.Sqrt(0.5 + float64(c.W)*0.5))

	wp1 := c.Pts[1].Mul(c.W)
	mid := c.Pts[0].Add(wp1.Mul(2)).Add(c.Pts[2]).Mul(scale * 0.5)
	if !mid.IsFinite() {
		// A large weight overflowed float32: redo the junction in float64.
		w := float64(c.W)
		s := 0.5 / (1 + w)
		mid = Point{
			X: float32((float64(c.Pts[0].X) + 2*w*float64(c.Pts[1].X) + float64(c.Pts[2].X)) * s),
			Y: float32((float64(c.Pts[0].Y) + 2*w*float64(c.Pts[1].Y) + float64(c.Pts[2].Y)) * s),
		}
	}

	dst0 := Conic{
		Pts: [3]Point{c.Pts[0], c.Pts[0].Add(wp1).Mul(scale), mid},
		W:   newW,
	}
	dst1 := Conic{
		Pts: [3]Point{mid, wp1.Add(c.Pts[2]).Mul(scale), c.Pts[2]},
		W:   newW,
	}
	return dst0, dst1
}

// conicToQuadsPow2 is the fixed subdivision depth used by
// ChopIntoQuadsPow2: 2^3 = 8 quadratics, 17 points.
const conicToQuadsPow2 = 3

// ChopIntoQuadsPow2 approximates the conic by 8 quadratics, writing
// their 17 shared points into dst (which must have length at least 17)
// and returning the number of quadratics (always 8). As the recursion
// deepens, each half's weight approaches 1 and the rational correction
// becomes negligible, so leaf conics are emitted as plain quadratics
// using their own control point. If any of the 17 points comes out
// non-finite, every interior point is set to the conic's control point
// and the two endpoints are kept.
func ChopIntoQuadsPow2(c Conic, dst []Point) int {
	dst[0] = c.Pts[0]
	subdivideConic(c, dst[1:], conicToQuadsPow2)

	const ptCount = 2<<conicToQuadsPow2 + 1
	for _, p := range dst[:ptCount] {
		if !p.IsFinite() {
			for i := 1; i < ptCount-1; i++ {
				dst[i] = c.Pts[1]
			}
			break
		}
	}
	return 1 << conicToQuadsPow2
}

func subdivideConic(c Conic, pts []Point, level int) []Point {
	if level == 0 {
		pts[0] = c.Pts[1]
		pts[1] = c.Pts[2]
		return pts[2:]
	}

	dst0, dst1 := c.Chop()

	startY, endY := c.Pts[0].Y, c.Pts[2].Y
	if between(startY, c.Pts[1].Y, endY) {
		// If the input is monotonic in y but the chop pushed the
		// junction outside that range, the curve was numerically too
		// close to a line; snap the junction onto whichever endpoint it
		// overshot.
		midY := dst0.Pts[2].Y
		if !between(startY, midY, endY) {
			closerY := startY
			if absF32(midY-endY) < absF32(midY-startY) {
				closerY = endY
			}
			dst0.Pts[2].Y = closerY
			dst1.Pts[0].Y = closerY
			midY = closerY
		}
		// Pin each child's interior control point into the range of its
		// own endpoints so both halves stay monotonic in y too.
		dst0.Pts[1].Y = clampF32(dst0.Pts[1].Y, startY, midY)
		dst1.Pts[1].Y = clampF32(dst1.Pts[1].Y, midY, endY)
	}

	pts = subdivideConic(dst0, pts, level-1)
	return subdivideConic(dst1, pts, level-1)
}

func between(a, b, c float32) bool {
	return (a-b)*(c-b) <= 0
}

// clampF32 clamps v to the range spanned by lo and hi, in either order.
func clampF32(v, lo, hi float32) float32 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction is the winding direction used when constructing arcs.
type Direction int

const (
	CW Direction = iota
	CCW
)

// MaxConicsForArc is the dst length that always suffices for
// BuildUnitArc, which writes one conic per full quadrant (at most 3)
// plus one trailing partial conic, so at most 4.
const MaxConicsForArc = 5

var quadrantPoints = [8]Point{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

const sqrt2Over2 = 0.70710678118654752440

// BuildUnitArc constructs the unit-circle arc from uStart to uStop
// (both unit vectors) going in direction dir, transforms it by xf, and
// writes the resulting conics to dst starting at dst[0]. Returns the
// number of conics written (0 if uStart and uStop are coincident). CW
// sweeps toward increasing polar angle (from (1,0) toward (0,1)), CCW
// toward decreasing angle.
//
// The arc is built in a canonical frame where uStart maps to (1,0),
// decomposed into whole 90° quadrants plus a final partial conic, and
// then rotated+transformed into place.
func BuildUnitArc(uStart, uStop Point, dir Direction, xf Transform, dst []Conic) int {
	x := uStart.Dot(uStop)
	y := uStart.Cross(uStop)
	absY := absF32(y)

	// Coincident start/end in the requested direction: no arc at all.
	if absY <= 1e-6 && x > 0 &&
		((y >= 0 && dir == CW) || (y <= 0 && dir == CCW)) {
		return 0
	}

	if dir == CCW {
		y = -y
	}

	quadrant := computeQuadrant(x, y)

	n := 0
	base := dst[:0]
	for i := 0; i < quadrant; i++ {
		base = append(base, Conic{
			Pts: [3]Point{
				quadrantPoints[i*2],
				quadrantPoints[i*2+1],
				quadrantPoints[(i*2+2)%8],
			},
			W: sqrt2Over2,
		})
		n++
	}

	finalPt := Point{X: x, Y: y}
	lastQ := quadrantPoints[quadrant*2]
	dot := lastQ.Dot(finalPt)

	if isFiniteF32(dot) && dot < 1 {
		offCurve := lastQ.Add(finalPt)
		cosHalf := float32(math.Sqrt((1 + float64(dot)) / 2))
		if cosHalf > 1e-6 {
			length := 1 / cosHalf
			offLen := offCurve.Length()
			if offLen > 1e-6 {
				offCurve = offCurve.Mul(length / offLen)
				if !pointsNearlyEqual(lastQ, offCurve) {
					base = append(base, Conic{
						Pts: [3]Point{lastQ, offCurve, finalPt},
						W:   cosHalf,
					})
					n++
				}
			}
		}
	}

	rotate := FromSinCos(uStart.Y, uStart.X)
	if dir == CCW {
		rotate = rotate.PreScale(1, -1)
	}
	full := rotate.PostConcat(xf)

	for i := range base {
		for j := range base[i].Pts {
			base[i].Pts[j] = full.MapPoint(base[i].Pts[j])
		}
	}

	copy(dst[:n], base)
	return n
}

func computeQuadrant(x, y float32) int {
	if y == 0 {
		return 2
	}
	if x == 0 {
		if y > 0 {
			return 1
		}
		return 3
	}
	q := 0
	if y < 0 {
		q += 2
	}
	if (x < 0) != (y < 0) {
		q++
	}
	return q
}
