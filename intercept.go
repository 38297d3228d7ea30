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

// maxInterceptIterations bounds the Newton refinement below; the
// bisection fallback guarantees convergence even when Newton
// overshoots, so this only needs to be "enough", not exact.
const maxInterceptIterations = 8

// ChopMonoCubicAtX splits src, which must already be monotonic in x,
// at the parameter where its x coordinate equals v, writing the 7
// resulting points into dst. Reports false if v lies outside the
// curve's x range.
func ChopMonoCubicAtX(src [4]Point, v float32, dst *[7]Point) bool {
	return chopMonoCubicAtCoord(src, v, dst, true)
}

// ChopMonoCubicAtY is ChopMonoCubicAtX for the y axis.
func ChopMonoCubicAtY(src [4]Point, v float32, dst *[7]Point) bool {
	return chopMonoCubicAtCoord(src, v, dst, false)
}

func chopMonoCubicAtCoord(src [4]Point, v float32, dst *[7]Point, xAxis bool) bool {
	coord := func(p Point) float32 {
		if xAxis {
			return p.X
		}
		return p.Y
	}

	lo, hi := float32(0), float32(1)
	vLo, vHi := coord(src[0]), coord(src[3])
	rising := vLo <= vHi
	if rising {
		if v < vLo || v > vHi {
			return false
		}
	} else {
		if v > vLo || v < vHi {
			return false
		}
	}
	if vLo == vHi {
		// A degenerate (zero-extent) monotone run: any split point works.
		ChopCubicAt(src, 0.5, dst)
		return true
	}

	// The Newton/bisection refinement below works entirely in float64 to
	// reduce precision loss, downcasting only the converged parameter.
	coord64 := func(p Point) float64 {
		if xAxis {
			return float64(p.X)
		}
		return float64(p.Y)
	}
	p0, p1, p2, p3 := coord64(src[0]), coord64(src[1]), coord64(src[2]), coord64(src[3])
	A := p3 + 3*(p1-p2) - p0
	B := 3 * (p2 - 2*p1 + p0)
	C := 3 * (p1 - p0)
	D := p0

	evalCoord := func(t float64) float64 {
		return ((A*t+B)*t+C)*t + D
	}
	deriv := func(t float64) float64 {
		return (3*A*t+2*B)*t + C
	}

	vv := float64(v)
	loD, hiD := float64(lo), float64(hi)
	t := (loD + hiD) / 2
	for i := 0; i < maxInterceptIterations; i++ {
		fv := evalCoord(t) - vv
		if fv == 0 {
			break
		}
		if (fv > 0) == rising {
			hiD = t
		} else {
			loD = t
		}

		d := deriv(t)
		next := t
		if d != 0 {
			next = t - fv/d
		}
		if !isFiniteF64(next) || next <= loD || next >= hiD {
			next = (loD + hiD) / 2
		}
		t = next
	}

	tv, ok := NewTValueBounded(float32(t))
	if !ok {
		return false
	}
	ChopCubicAt(src, tv, dst)
	return true
}
