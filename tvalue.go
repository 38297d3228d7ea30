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

// TValue is a chop parameter guaranteed to lie strictly in the open
// interval (0,1) and to be finite. Every chop routine in this package
// consumes or produces TValue rather than a bare float32, so that a
// degenerate chop (at an endpoint) cannot type-check.
type TValue float32

// NewTValue constructs a TValue, failing when v is not finite or lies
// outside the open interval (0,1).
func NewTValue(v float32) (TValue, bool) {
	if !isFiniteF32(v) || v <= 0 || v >= 1 {
		return 0, false
	}
	return TValue(v), true
}

// tValueClamp is the half-width of the clamping band used by
// NewTValueBounded, matching the teacher's flattening epsilon order of
// magnitude while staying well inside float32 precision.
const tValueClamp = 1e-5

// NewTValueBounded constructs a TValue by clamping v into
// [tValueClamp, 1-tValueClamp]. Used by solvers (cubic roots, max
// curvature) whose raw output may land infinitesimally outside (0,1)
// due to floating point error, but which must still produce a usable
// chop parameter.
func NewTValueBounded(v float32) (TValue, bool) {
	if !isFiniteF32(v) {
		return 0, false
	}
	if v < tValueClamp {
		v = tValueClamp
	} else if v > 1-tValueClamp {
		v = 1 - tValueClamp
	}
	return TValue(v), true
}

// NormalizedT is a parameter guaranteed to lie in the closed interval
// [0,1] and to be finite. Evaluation routines accept NormalizedT, since
// endpoints are valid evaluation points even though they are invalid
// chop parameters.
type NormalizedT float32

// NewNormalizedT constructs a NormalizedT, clamping into [0,1].
func NewNormalizedT(v float32) NormalizedT {
	if !isFiniteF32(v) {
		return 0
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return NormalizedT(v)
}

// AsNormalized widens a TValue to a NormalizedT; the open interval is a
// subset of the closed one, so this never fails.
func (t TValue) AsNormalized() NormalizedT { return NormalizedT(t) }

func isFiniteF32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isFiniteF64(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
