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

import "testing"

func TestChopQuadAt(t *testing.T) {
	src := [3]Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}}
	half, _ := NewTValue(0.5)
	var dst [5]Point
	ChopQuadAt(src, half, &dst)

	if dst[0] != src[0] {
		t.Errorf("dst[0] = %v, want %v", dst[0], src[0])
	}
	if dst[4] != src[2] {
		t.Errorf("dst[4] = %v, want %v", dst[4], src[2])
	}
	if dst[2] != (Point{X: 1, Y: 1}) {
		t.Errorf("midpoint = %v, want {1,1}", dst[2])
	}
}

// TestChopQuadAtXExtremaMonotonic is seed scenario 2: a monotonic
// quadratic has no x-extremum, so the chop is a no-op returning count 0
// with dst[0..2] equal to the input.
func TestChopQuadAtXExtremaMonotonic(t *testing.T) {
	src := [3]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	var dst [5]Point
	count := ChopQuadAtXExtrema(src, &dst)

	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
	if dst[0] != src[0] || dst[1] != src[1] || dst[2] != src[2] {
		t.Errorf("dst[0..2] = %v, want input %v", dst[:3], src)
	}
}

func TestChopQuadAtXExtremaSplits(t *testing.T) {
	// x goes 0 -> 2 -> 0: has an x-extremum at t=0.5
	src := [3]Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}}
	var dst [5]Point
	count := ChopQuadAtXExtrema(src, &dst)

	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if dst[0] != src[0] {
		t.Errorf("dst[0] = %v, want %v", dst[0], src[0])
	}
	if dst[4] != src[2] {
		t.Errorf("dst[4] = %v, want %v", dst[4], src[2])
	}
	// junction x must be identical across both halves
	if dst[1].X != dst[2].X || dst[2].X != dst[3].X {
		t.Errorf("junction x not flattened: %v %v %v", dst[1].X, dst[2].X, dst[3].X)
	}
}

func TestEvalQuadAtEndpoints(t *testing.T) {
	src := [3]Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}}
	if got := EvalQuadAt(src, 0); got != src[0] {
		t.Errorf("EvalQuadAt(0) = %v, want %v", got, src[0])
	}
	if got := EvalQuadAt(src, 1); got != src[2] {
		t.Errorf("EvalQuadAt(1) = %v, want %v", got, src[2])
	}
}

func TestFindQuadMaxCurvatureEndpoints(t *testing.T) {
	// A straight (degenerate) quadratic has no interior curvature peak.
	src := [3]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	got := FindQuadMaxCurvature(src)
	if got != 0 && got != 1 {
		t.Errorf("FindQuadMaxCurvature(straight) = %v, want 0 or 1", got)
	}
}
