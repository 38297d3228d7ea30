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

// Point is a point (or free vector) in 2D space. Coordinates must be
// finite; callers are responsible for not feeding NaN/Inf into the core.
type Point struct {
	X, Y float32
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point { return Point{p.X * s, p.Y * s} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float32 { return p.X*q.X + p.Y*q.Y }

// Cross returns the scalar (z-component) cross product of p and q.
func (p Point) Cross(q Point) float32 { return p.X*q.Y - p.Y*q.X }

// LengthSq returns the squared length of p.
func (p Point) LengthSq() float32 { return p.X*p.X + p.Y*p.Y }

// Length returns the length of p.
func (p Point) Length() float32 { return float32(math.Sqrt(float64(p.LengthSq()))) }

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsInf(float64(p.X), 0) && !math.IsNaN(float64(p.X)) &&
		!math.IsInf(float64(p.Y), 0) && !math.IsNaN(float64(p.Y))
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// nearlyEqual reports whether a and b differ by less than a small fixed
// tolerance, used for degeneracy checks throughout the core.
func nearlyEqual(a, b float32) bool {
	const eps = 1e-6
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// pointsNearlyEqual reports whether p and q are coordinate-wise nearly equal.
func pointsNearlyEqual(p, q Point) bool {
	return nearlyEqual(p.X, q.X) && nearlyEqual(p.Y, q.Y)
}
