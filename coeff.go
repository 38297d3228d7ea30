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

// QuadCoeff is the monomial form of a quadratic Bézier,
// eval(t) = A*t^2 + B*t + C.
type QuadCoeff struct {
	A, B, C Point
}

// NewQuadCoeff converts three control points to monomial form.
func NewQuadCoeff(p0, p1, p2 Point) QuadCoeff {
	return QuadCoeff{
		A: p2.Sub(p1.Mul(2)).Add(p0),
		B: p1.Sub(p0).Mul(2),
		C: p0,
	}
}

// Eval evaluates the quadratic at t.
func (q QuadCoeff) Eval(t float32) Point {
	return q.A.Mul(t).Add(q.B).Mul(t).Add(q.C)
}

// CubicCoeff is the monomial form of a cubic Bézier,
// eval(t) = ((A*t + B)*t + C)*t + D.
type CubicCoeff struct {
	A, B, C, D Point
}

// NewCubicCoeff converts four control points to monomial form.
func NewCubicCoeff(p0, p1, p2, p3 Point) CubicCoeff {
	return CubicCoeff{
		A: p3.Add(p1.Sub(p2).Mul(3)).Sub(p0),
		B: p2.Sub(p1.Mul(2)).Add(p0).Mul(3),
		C: p1.Sub(p0).Mul(3),
		D: p0,
	}
}

// Eval evaluates the cubic at t.
func (c CubicCoeff) Eval(t float32) Point {
	return c.A.Mul(t).Add(c.B).Mul(t).Add(c.C).Mul(t).Add(c.D)
}
