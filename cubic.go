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

// ChopCubicAt splits the cubic src at t, writing the 7 points of the
// two resulting cubics (sharing dst[3] as the junction) into dst.
func ChopCubicAt(src [4]Point, t TValue, dst *[7]Point) {
	tf := float32(t)
	ab := src[0].Lerp(src[1], tf)
	bc := src[1].Lerp(src[2], tf)
	cd := src[2].Lerp(src[3], tf)
	abc := ab.Lerp(bc, tf)
	bcd := bc.Lerp(cd, tf)
	abcd := abc.Lerp(bcd, tf)

	dst[0] = src[0]
	dst[1] = ab
	dst[2] = abc
	dst[3] = abcd
	dst[4] = bcd
	dst[5] = cd
	dst[6] = src[3]
}

// ChopCubicAtMulti splits the cubic src at the sorted parameters ts
// (0..3 of them), appending 4+3*len(ts) points to dst (which is
// truncated to length 0 first) and returning the resulting slice; with
// no parameters src is copied unchanged. If a parameter fails to
// renormalize into the remaining tail segment (a finite-precision
// collapse), the tail is emitted as is and the remaining points are
// filled with a degenerate clump at its endpoint, guaranteeing the full
// output length regardless.
func ChopCubicAtMulti(src [4]Point, ts []TValue, dst []Point) []Point {
	dst = dst[:0]
	if len(ts) == 0 {
		return append(dst, src[:]...)
	}
	cur := src

	// t is the current parameter renormalized into cur; remaining keeps
	// the original (absolute) parameters used for renormalization.
	t := ts[0]
	remaining := ts

	for len(remaining) > 0 {
		var seven [7]Point
		ChopCubicAt(cur, t, &seven)

		if len(dst) == 0 {
			dst = append(dst, seven[0], seven[1], seven[2], seven[3])
		} else {
			dst = append(dst, seven[1], seven[2], seven[3])
		}

		if len(remaining) == 1 {
			dst = append(dst, seven[4], seven[5], seven[6])
			return dst
		}

		next, ok := UnitDivide(float32(remaining[1]-remaining[0]), float32(1-remaining[0]))
		if !ok {
			// Degenerate collapse: emit the tail, then clump the rest of
			// the output at its endpoint so the caller still gets the
			// promised 4+3n points.
			dst = append(dst, seven[4], seven[5], seven[6])
			for i := 1; i < len(remaining); i++ {
				dst = append(dst, seven[6], seven[6], seven[6])
			}
			return dst
		}

		cur = [4]Point{seven[3], seven[4], seven[5], seven[6]}
		t = next
		remaining = remaining[1:]
	}
	return dst
}

// cubicDerivCoeff returns the coefficients (A, B, C) of the cubic's
// derivative divided by 3, i.e. P'(t)/3 = A*t^2 + B*t + C, for a single
// axis's four control-point coordinates.
func cubicDerivCoeff(a, b, c, d float32) (A, B, C float32) {
	A = d - a + 3*(b-c)
	B = 2 * (a - 2*b + c)
	C = b - a
	return
}

// ChopCubicAtXExtrema chops src at its 0..2 x-extrema, flattening the
// chopped axis at each junction so every resulting piece is monotonic
// in x. Returns the number of splits and writes 4+3*splits points to
// dst (which must have length at least 10).
func ChopCubicAtXExtrema(src [4]Point, dst []Point) int {
	return chopCubicAtExtrema(src, dst, true)
}

// ChopCubicAtYExtrema is ChopCubicAtXExtrema for the y axis.
func ChopCubicAtYExtrema(src [4]Point, dst []Point) int {
	return chopCubicAtExtrema(src, dst, false)
}

func chopCubicAtExtrema(src [4]Point, dst []Point, xAxis bool) int {
	coord := func(p Point) float32 {
		if xAxis {
			return p.X
		}
		return p.Y
	}

	var A, B, C float32
	if xAxis {
		A, B, C = cubicDerivCoeff(src[0].X, src[1].X, src[2].X, src[3].X)
	} else {
		A, B, C = cubicDerivCoeff(src[0].Y, src[1].Y, src[2].Y, src[3].Y)
	}
	roots := UnitQuadRoots(A, B, C)

	out := ChopCubicAtMulti(src, roots, dst[:0])
	copy(dst, out)

	for i := range roots {
		junctionIdx := 3 * (i + 1)
		setCoord := func(idx int) {
			p := dst[idx]
			if xAxis {
				p.X = coord(dst[junctionIdx])
			} else {
				p.Y = coord(dst[junctionIdx])
			}
			dst[idx] = p
		}
		setCoord(junctionIdx - 1)
		setCoord(junctionIdx + 1)
	}

	return len(roots)
}

// EvalCubicAt evaluates the cubic at t, writing the requested outputs
// (any of loc, tangent, curvature may be nil to skip it).
//
// The tangent fallback logic below reproduces the original algorithm's
// documented behavior exactly, including its suspected inverted
// condition (a fallback that is already non-degenerate gets replaced by
// p3-p0 instead of the degenerate one): this looks backwards, but is
// preserved rather than "fixed" since downstream behavior depends on it.
func EvalCubicAt(src [4]Point, t NormalizedT, loc, tangent, curvature *Point) {
	coeff := NewCubicCoeff(src[0], src[1], src[2], src[3])
	tf := float32(t)

	if loc != nil {
		*loc = coeff.Eval(tf)
	}

	if tangent != nil {
		tan := coeff.A.Mul(3 * tf).Add(coeff.B.Mul(2)).Mul(tf).Add(coeff.C)

		atStart := tf == 0 && src[0] == src[1]
		atEnd := tf == 1 && src[2] == src[3]
		if atStart || atEnd {
			var fallback Point
			if atStart {
				fallback = src[2].Sub(src[0])
			} else {
				fallback = src[3].Sub(src[1])
			}
			if fallback == (Point{}) {
				fallback = src[3].Sub(src[0])
			}
			tan = fallback
			if fallback.X != 0 && fallback.Y != 0 {
				tan = src[3].Sub(src[0])
			}
		}
		*tangent = tan
	}

	if curvature != nil {
		*curvature = coeff.A.Mul(3 * tf).Add(coeff.B).Mul(2)
	}
}

// FindCubicMaxCurvature returns the 0..3 sorted distinct parameters
// where the dot product F'(t)·F''(t) is zero (the candidate set for extrema
// of curvature), derived directly from the cubic's monomial
// coefficients: P'(t)=3At^2+2Bt+C, P''(t)=6At+2B.
func FindCubicMaxCurvature(src [4]Point) []TValue {
	coeff := NewCubicCoeff(src[0], src[1], src[2], src[3])
	A, B, C := coeff.A, coeff.B, coeff.C

	dot := func(a, b Point) float32 { return a.X*b.X + a.Y*b.Y }

	k0 := 9 * dot(A, A)
	k1 := 9 * dot(A, B)
	k2 := 2*dot(B, B) + 3*dot(A, C)
	k3 := dot(B, C)

	return CubicRoots(k0, k1, k2, k3)
}

// FindCubicInflections returns the 0..2 sorted distinct parameters
// where the cubic's curvature changes sign, i.e. where
// cross(P'(t), P''(t)) == 0. Derived directly from the cubic's
// monomial coefficients (the cross product of the quadratic P' and
// linear P'' always collapses to a quadratic in t):
// P'×P'' = -2*(3(A×B)t^2 + 3(A×C)t + B×C).
func FindCubicInflections(src [4]Point) []TValue {
	coeff := NewCubicCoeff(src[0], src[1], src[2], src[3])
	A, B, C := coeff.A, coeff.B, coeff.C

	cross := func(a, b Point) float32 { return a.X*b.Y - a.Y*b.X }

	a := 3 * cross(A, B)
	b := 3 * cross(A, C)
	c := cross(B, C)

	return UnitQuadRoots(a, b, c)
}

// cuspPrecisionFactor scales the sum of squared edge lengths to get the
// threshold below which a max-curvature candidate's derivative is
// considered to vanish (a cusp).
const cuspPrecisionFactor = 1e-8

// FindCubicCusp returns the parameter of the cubic's cusp, if it has
// one. A cusp requires the control polygon to fold back on itself (the
// two on_same_side checks below) and a max-curvature candidate whose
// derivative is, to numerical precision, zero.
func FindCubicCusp(src [4]Point) (TValue, bool) {
	if src[0] == src[1] || src[2] == src[3] {
		return 0, false
	}

	if onSameSide(src, 0, 2) || onSameSide(src, 2, 0) {
		return 0, false
	}

	d0 := src[1].Sub(src[0])
	d1 := src[2].Sub(src[1])
	d2 := src[3].Sub(src[2])
	precision := (d0.LengthSq() + d1.LengthSq() + d2.LengthSq()) * cuspPrecisionFactor

	Ax, Bx, Cx := cubicDerivCoeff(src[0].X, src[1].X, src[2].X, src[3].X)
	Ay, By, Cy := cubicDerivCoeff(src[0].Y, src[1].Y, src[2].Y, src[3].Y)

	for _, t := range FindCubicMaxCurvature(src) {
		tf := float32(t)
		// Scaled derivative P'(t)/3, matching the magnitude cuspPrecisionFactor
		// was calibrated against; EvalCubicAt's tangent is 3x this and would
		// make the cusp test 9x stricter on LengthSq.
		dx := Ax*tf*tf + Bx*tf + Cx
		dy := Ay*tf*tf + By*tf + Cy
		if dx*dx+dy*dy < precision {
			return t, true
		}
	}
	return 0, false
}

// onSameSide reports whether pts[test] and pts[test+1] lie on the same
// side of (or on) the line through pts[line] and pts[line+1] — used as a
// cheap pre-filter for the existence of a cusp (a cusp can only occur
// when the first and last legs of the control polygon cross).
func onSameSide(pts [4]Point, test, line int) bool {
	origin := pts[line]
	dir := pts[line+1].Sub(origin)
	c0 := dir.Cross(pts[test].Sub(origin))
	c1 := dir.Cross(pts[test+1].Sub(origin))
	return c0*c1 >= 0
}
