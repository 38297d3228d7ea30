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

// Transform is an affine transformation of the plane, stored as
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// in the row-major order [A, B, C, D, E, F], matching the layout the
// rasterizer's CTM field has always used.
type Transform [6]float32

// Identity is the identity transform.
var Identity = Transform{1, 0, 0, 1, 0, 0}

// PreScale returns t composed with a scaling by (sx, sy) applied first,
// i.e. the transform mapping p to t.MapPoint(Point{sx*p.X, sy*p.Y}).
func (t Transform) PreScale(sx, sy float32) Transform {
	return Transform{
		t[0] * sx, t[1] * sx,
		t[2] * sy, t[3] * sy,
		t[4], t[5],
	}
}

// PostConcat returns the transform that applies t first, then other.
func (t Transform) PostConcat(other Transform) Transform {
	return Transform{
		other[0]*t[0] + other[2]*t[1],
		other[1]*t[0] + other[3]*t[1],
		other[0]*t[2] + other[2]*t[3],
		other[1]*t[2] + other[3]*t[3],
		other[0]*t[4] + other[2]*t[5] + other[4],
		other[1]*t[4] + other[3]*t[5] + other[5],
	}
}

// FromSinCos builds a pure rotation transform from its sine and cosine,
// with no translation: the same construction used to align a unit-arc's
// canonical (1,0)-based conics with an arbitrary start direction.
func FromSinCos(sin, cos float32) Transform {
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// MapPoint applies the transform to a single point.
func (t Transform) MapPoint(p Point) Point {
	return Point{
		X: t[0]*p.X + t[2]*p.Y + t[4],
		Y: t[1]*p.X + t[3]*p.Y + t[5],
	}
}

// MapPoints applies the transform to every point in pts, in place.
func (t Transform) MapPoints(pts []Point) {
	for i, p := range pts {
		pts[i] = t.MapPoint(p)
	}
}

// MapVector applies only the linear part of the transform (no translation).
func (t Transform) MapVector(v Point) Point {
	return Point{
		X: t[0]*v.X + t[2]*v.Y,
		Y: t[1]*v.X + t[3]*v.Y,
	}
}
