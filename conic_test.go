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

import (
	"math"
	"testing"
)

func TestConicEvalAtEndpoints(t *testing.T) {
	c := NewConic(Point{0, 0}, Point{1, 1}, Point{2, 0}, 0.7071)
	if got := c.EvalAt(0); got != c.Pts[0] {
		t.Errorf("EvalAt(0) = %v, want %v", got, c.Pts[0])
	}
	if got := c.EvalAt(1); got != c.Pts[2] {
		t.Errorf("EvalAt(1) = %v, want %v", got, c.Pts[2])
	}
}

func TestConicChopPreservesCurve(t *testing.T) {
	c := NewConic(Point{1, 0}, Point{1, 1}, Point{0, 1}, float32(math.Sqrt2)/2)
	lo, hi := c.Chop()

	if lo.Pts[0] != c.Pts[0] {
		t.Errorf("lo start = %v, want %v", lo.Pts[0], c.Pts[0])
	}
	if hi.Pts[2] != c.Pts[2] {
		t.Errorf("hi end = %v, want %v", hi.Pts[2], c.Pts[2])
	}
	if lo.Pts[2] != hi.Pts[0] {
		t.Errorf("junction mismatch: %v vs %v", lo.Pts[2], hi.Pts[0])
	}

	// The midpoint of a 90-degree unit arc lies at 45 degrees on the
	// unit circle.
	mid := lo.Pts[2]
	approxPoint(t, "chop midpoint", mid, Point{float32(math.Sqrt2) / 2, float32(math.Sqrt2) / 2}, 1e-3)
}

// TestBuildUnitArc90DegCW is seed scenario 3.
func TestBuildUnitArc90DegCW(t *testing.T) {
	uStart := Point{X: 1, Y: 0}
	uStop := Point{X: 0, Y: 1}

	var conics [MaxConicsForArc]Conic
	n := BuildUnitArc(uStart, uStop, CW, Identity, conics[:])

	if n != 1 {
		t.Fatalf("expected 1 conic, got %d", n)
	}
	want := Conic{Pts: [3]Point{{1, 0}, {1, 1}, {0, 1}}, W: sqrt2Over2}
	approxPoint(t, "pt0", conics[0].Pts[0], want.Pts[0], 1e-5)
	approxPoint(t, "pt1", conics[0].Pts[1], want.Pts[1], 1e-5)
	approxPoint(t, "pt2", conics[0].Pts[2], want.Pts[2], 1e-5)
	if math.Abs(float64(conics[0].W-want.W)) > 1e-5 {
		t.Errorf("weight = %v, want %v", conics[0].W, want.W)
	}
}

// TestBuildUnitArc180DegCW is seed scenario 4.
func TestBuildUnitArc180DegCW(t *testing.T) {
	uStart := Point{X: 1, Y: 0}
	uStop := Point{X: -1, Y: 0}

	var conics [MaxConicsForArc]Conic
	n := BuildUnitArc(uStart, uStop, CW, Identity, conics[:])

	if n != 2 {
		t.Fatalf("expected 2 conics, got %d", n)
	}

	want0 := [3]Point{{1, 0}, {1, 1}, {0, 1}}
	want1 := [3]Point{{0, 1}, {-1, 1}, {-1, 0}}
	for i, w := range want0 {
		approxPoint(t, "conic0", conics[0].Pts[i], w, 1e-5)
	}
	for i, w := range want1 {
		approxPoint(t, "conic1", conics[1].Pts[i], w, 1e-5)
	}
	if math.Abs(float64(conics[0].W-sqrt2Over2)) > 1e-5 || math.Abs(float64(conics[1].W-sqrt2Over2)) > 1e-5 {
		t.Errorf("weights = %v, %v, want both %v", conics[0].W, conics[1].W, sqrt2Over2)
	}
}

func TestBuildUnitArcCoincidentIsEmpty(t *testing.T) {
	u := Point{X: 1, Y: 0}
	var conics [MaxConicsForArc]Conic
	n := BuildUnitArc(u, u, CW, Identity, conics[:])
	if n != 0 {
		t.Errorf("expected 0 conics for a coincident arc, got %d", n)
	}
}

func TestChopIntoQuadsPow2AllFinite(t *testing.T) {
	c := NewConic(Point{1, 0}, Point{1, 1}, Point{0, 1}, sqrt2Over2)
	var dst [17]Point
	n := ChopIntoQuadsPow2(c, dst[:])

	if n != 8 {
		t.Fatalf("expected 8 quads, got %d", n)
	}
	for i, p := range dst {
		if !p.IsFinite() {
			t.Errorf("point %d not finite: %v", i, p)
		}
	}
	if dst[0] != c.Pts[0] {
		t.Errorf("dst[0] = %v, want %v", dst[0], c.Pts[0])
	}
	if dst[16] != c.Pts[2] {
		t.Errorf("dst[16] = %v, want %v", dst[16], c.Pts[2])
	}
}
