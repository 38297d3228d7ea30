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

func TestUnitDivide(t *testing.T) {
	if tv, ok := UnitDivide(1, 2); !ok || math.Abs(float64(tv)-0.5) > 1e-6 {
		t.Errorf("UnitDivide(1,2): got %v, %v", tv, ok)
	}
	if _, ok := UnitDivide(2, 1); ok {
		t.Error("UnitDivide(2,1): quotient >= 1 should fail")
	}
	if _, ok := UnitDivide(0, 1); ok {
		t.Error("UnitDivide(0,1): quotient 0 should fail")
	}
	if _, ok := UnitDivide(1, 0); ok {
		t.Error("UnitDivide(1,0): division by zero should fail")
	}
	// sign flip: negative n,d should be normalized before dividing
	if tv, ok := UnitDivide(-1, -2); !ok || math.Abs(float64(tv)-0.5) > 1e-6 {
		t.Errorf("UnitDivide(-1,-2): got %v, %v", tv, ok)
	}
}

func TestUnitQuadRoots(t *testing.T) {
	// t^2 - t + 0.21 has roots at 0.3, 0.7 (both in (0,1))
	// (t-0.3)(t-0.7) = t^2 - t + 0.21
	roots := UnitQuadRoots(1, -1, 0.21)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d: %v", len(roots), roots)
	}
	if math.Abs(float64(roots[0])-0.3) > 1e-4 || math.Abs(float64(roots[1])-0.7) > 1e-4 {
		t.Errorf("roots = %v, want ~[0.3, 0.7]", roots)
	}

	// No real roots
	if roots := UnitQuadRoots(1, 0, 1); roots != nil {
		t.Errorf("expected no real roots, got %v", roots)
	}

	// Linear fallback when a == 0: t - 0.5 = 0
	roots = UnitQuadRoots(0, 1, -0.5)
	if len(roots) != 1 || math.Abs(float64(roots[0])-0.5) > 1e-6 {
		t.Errorf("linear fallback: got %v", roots)
	}
}

func TestCubicRootsThreeReal(t *testing.T) {
	// (t-0.2)(t-0.5)(t-0.8) = t^3 - 1.5t^2 + 0.66t - 0.08
	roots := CubicRoots(1, -1.5, 0.66, -0.08)
	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d: %v", len(roots), roots)
	}
	want := []float64{0.2, 0.5, 0.8}
	for i, w := range want {
		if math.Abs(float64(roots[i])-w) > 1e-3 {
			t.Errorf("root[%d] = %v, want ~%v", i, roots[i], w)
		}
	}
}

func TestCubicRootsDegradesToQuadratic(t *testing.T) {
	// k0 ~ 0: falls back to the quadratic solver.
	roots := CubicRoots(0, 1, -1, 0.21)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots via quadratic fallback, got %d", len(roots))
	}
}
