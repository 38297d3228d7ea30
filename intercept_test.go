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

func TestChopMonoCubicAtX(t *testing.T) {
	// Monotonic in x from 0 to 3.
	src := [4]Point{{0, 0}, {1, 2}, {2, 2}, {3, 0}}

	var dst [7]Point
	ok := ChopMonoCubicAtX(src, 1.5, &dst)
	if !ok {
		t.Fatal("expected a valid intercept")
	}
	const eps = 1e-3
	if dst[3].X < 1.5-eps || dst[3].X > 1.5+eps {
		t.Errorf("junction x = %v, want ~1.5", dst[3].X)
	}
	if dst[0] != src[0] || dst[6] != src[3] {
		t.Errorf("endpoints not preserved: %v, %v", dst[0], dst[6])
	}
}

func TestChopMonoCubicAtXOutOfRange(t *testing.T) {
	src := [4]Point{{0, 0}, {1, 2}, {2, 2}, {3, 0}}
	var dst [7]Point
	if ChopMonoCubicAtX(src, 10, &dst) {
		t.Error("expected failure for out-of-range x")
	}
	if ChopMonoCubicAtX(src, -1, &dst) {
		t.Error("expected failure for out-of-range x")
	}
}

func TestChopMonoCubicAtYDegenerateRun(t *testing.T) {
	// Zero-extent y run: every point has the same y coordinate.
	src := [4]Point{{0, 5}, {1, 5}, {2, 5}, {3, 5}}
	var dst [7]Point
	ok := ChopMonoCubicAtY(src, 5, &dst)
	if !ok {
		t.Fatal("expected success on degenerate zero-extent run")
	}
	for i, p := range dst {
		if !p.IsFinite() {
			t.Errorf("point %d not finite: %v", i, p)
		}
	}
}
