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
)

// strokeSegment represents a line segment in user coordinates
type strokeSegment struct {
	A, B Point // endpoints in user space
	T    Point // unit tangent (A→B direction)
	N    Point // unit normal (90° CCW from T)
}

// Stroke renders the path as a stroked outline using Width, Cap, Join, and
// MiterLimit. The emit callback receives coverage row-by-row; its slice
// argument is valid only during the call.
func (r *Rasterizer) Stroke(p *Path, emit func(y, xMin int, coverage []float32)) {
	// Flatten path into subpaths (results stored in r.segs, etc.)
	r.flattenPath(p)
	if len(r.segsOffsets) == 0 && len(r.degeneratePoints) == 0 {
		return
	}

	// Build stroke outlines for all subpaths into a single contiguous buffer.
	// strokeOffsets tracks where each polygon starts, so overlapping regions
	// (e.g. at self-intersecting joins) are composited using nonzero winding.
	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	// Handle degenerate subpaths (no orientation, e.g. MoveTo immediately
	// followed by Close): butt caps produce nothing, round caps a dot,
	// square caps a small square.
	switch r.Cap {
	case CapRound:
		for _, pt := range r.degeneratePoints {
			startOffset := len(r.stroke)
			r.addArc(pt, float32(r.Width/2), Point{X: 1, Y: 0}, 2*math.Pi, true)
			r.strokeOffsets = append(r.strokeOffsets, startOffset)
		}
	case CapSquare:
		for _, pt := range r.degeneratePoints {
			startOffset := len(r.stroke)
			r.addSquare(pt, Point{X: 1, Y: 0}, float32(r.Width/2))
			r.strokeOffsets = append(r.strokeOffsets, startOffset)
		}
	}

	r.strokeAllSubpaths()

	// Fill all stroke polygons together as a compound path
	r.fillStrokeOutlines(emit)
}

// strokeAllSubpaths strokes all flattened subpaths.
func (r *Rasterizer) strokeAllSubpaths() {
	numSubpaths := len(r.segsOffsets)
	for i := range numSubpaths {
		segs := r.getSubpathSegments(i)
		closed := r.subpathClosed[i]

		startOffset := len(r.stroke)
		r.strokeSubpath(segs, closed)
		if len(r.stroke)-startOffset >= 3 {
			r.strokeOffsets = append(r.strokeOffsets, startOffset)
		} else {
			// Degenerate polygon, discard by resetting to start
			r.stroke = r.stroke[:startOffset]
		}
	}
}

// getSubpathSegments returns the segments for subpath i as a slice into segs.
func (r *Rasterizer) getSubpathSegments(i int) []strokeSegment {
	start := r.segsOffsets[i]
	var end int
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	} else {
		end = len(r.segs)
	}
	return r.segs[start:end]
}

// flattenPath walks the path, flattens curves, and populates the flattening
// buffers with precomputed segment geometry. Results are stored in:
//   - r.segs: all segments from all subpaths, contiguous
//   - r.segsOffsets: start index of each subpath in segs
//   - r.subpathClosed: whether each subpath is closed
//   - r.degeneratePoints: degenerate subpaths (no orientation)
func (r *Rasterizer) flattenPath(p *Path) {
	// clear buffers (preserving capacity)
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	var currentPt Point
	var subpathStartPt Point
	subpathStartIdx := 0 // index into r.segs where current subpath starts
	inSubpath := false
	sawDrawingCmd := false // tracks if we saw LineTo/QuadTo/CubeTo (for degenerate detection)

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case MoveTo:
			// close previous subpath if needed
			if inSubpath && (len(r.segs) > subpathStartIdx || sawDrawingCmd) {
				if len(r.segs) == subpathStartIdx {
					// degenerate subpath (no orientation) - collect for special handling
					r.degeneratePoints = append(r.degeneratePoints, subpathStartPt)
				} else {
					r.segsOffsets = append(r.segsOffsets, subpathStartIdx)
					r.subpathClosed = append(r.subpathClosed, false)
				}
			}
			currentPt = p.Coords[coordIdx]
			coordIdx++
			subpathStartPt = currentPt
			subpathStartIdx = len(r.segs)
			inSubpath = true
			sawDrawingCmd = false

		case LineTo:
			pt := p.Coords[coordIdx]
			coordIdx++
			if !inSubpath {
				continue
			}
			sawDrawingCmd = true
			r.addStrokeSegment(currentPt, pt)
			currentPt = pt

		case QuadTo:
			ctrl, pt := p.Coords[coordIdx], p.Coords[coordIdx+1]
			coordIdx += 2
			if !inSubpath {
				continue
			}
			sawDrawingCmd = true
			r.flattenQuadratic(currentPt, ctrl, pt, r.addStrokeSegment)
			currentPt = pt

		case CubeTo:
			c0, c1, pt := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			coordIdx += 3
			if !inSubpath {
				continue
			}
			sawDrawingCmd = true
			r.flattenCubic(currentPt, c0, c1, pt, r.addStrokeSegment)
			currentPt = pt

		case Close:
			if inSubpath {
				// add closing segment if needed
				if currentPt != subpathStartPt {
					r.addStrokeSegment(currentPt, subpathStartPt)
				}
				if len(r.segs) == subpathStartIdx {
					// degenerate closed subpath - collect for special handling
					r.degeneratePoints = append(r.degeneratePoints, subpathStartPt)
				} else {
					r.segsOffsets = append(r.segsOffsets, subpathStartIdx)
					r.subpathClosed = append(r.subpathClosed, true)
				}
				currentPt = subpathStartPt
				subpathStartIdx = len(r.segs)
				inSubpath = false
				sawDrawingCmd = false
			}
		}
	}

	// handle unclosed subpath at end
	if inSubpath && (len(r.segs) > subpathStartIdx || sawDrawingCmd) {
		if len(r.segs) == subpathStartIdx {
			// degenerate subpath - collect for special handling
			r.degeneratePoints = append(r.degeneratePoints, subpathStartPt)
		} else {
			r.segsOffsets = append(r.segsOffsets, subpathStartIdx)
			r.subpathClosed = append(r.subpathClosed, false)
		}
	}
}

// addStrokeSegment adds a line segment to the flattening buffer.
func (r *Rasterizer) addStrokeSegment(a, b Point) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return // skip degenerate segment
	}
	t := d.Mul(1 / length)      // unit tangent
	n := Point{X: -t.Y, Y: t.X} // unit normal (90° CCW)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// strokeSubpath builds the stroke outline for a single subpath into r.stroke.
// The stroke outline is built as a closed polygon: forward pass on the +N side,
// then backward pass on the -N side. Join geometry is added on the outer side
// of each corner, which depends on the turn direction.
// Zero-length subpaths are handled by the caller before invoking this method.
func (r *Rasterizer) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return // empty, nothing to do
	}

	d := float32(r.Width / 2) // half-width

	if closed {
		// Closed path: no caps, just joins
		// Build one continuous polygon: +N side forward, then -N side backward
		// The closing corner needs special handling to connect the two sides.

		first := &segs[0]
		last := &segs[len(segs)-1]

		// Forward pass: +N side (right side of path direction). At each
		// corner both offset points are always added; a join is additionally
		// inserted when +N is the outer side of the turn (nonzero winding
		// fills the inner side's resulting notch correctly either way, so no
		// separate inner-corner intersection is needed).
		sinThetaClose := last.T.X*first.T.Y - last.T.Y*first.T.X
		r.stroke = append(r.stroke, first.A.Add(first.N.Mul(d)))
		for i := range len(segs) {
			seg := &segs[i]
			next := first
			sinTheta := sinThetaClose
			if i < len(segs)-1 {
				next = &segs[i+1]
				sinTheta = seg.T.X*next.T.Y - seg.T.Y*next.T.X
			}
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			if sinTheta <= -collinearityThreshold {
				// Left turn: +N is outer side
				r.addJoin(seg.B, seg.T, next.T, d, true)
			}
			r.stroke = append(r.stroke, next.A.Add(next.N.Mul(d)))
		}

		// Backward pass: -N side (left side of path direction), iterating
		// segments in reverse; +N's inner/outer roles are swapped here.
		r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
		if sinThetaClose >= collinearityThreshold {
			r.addJoin(first.A, last.T, first.T, d, false)
		}
		r.stroke = append(r.stroke, last.B.Sub(last.N.Mul(d)))

		for i := len(segs) - 1; i > 0; i-- {
			seg := &segs[i]
			prev := &segs[i-1]
			sinTheta := prev.T.X*seg.T.Y - prev.T.Y*seg.T.X
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			if sinTheta >= collinearityThreshold {
				// Right turn: -N is outer side
				r.addJoin(seg.A, prev.T, seg.T, d, false)
			}
			r.stroke = append(r.stroke, prev.B.Sub(prev.N.Mul(d)))
		}

	} else {
		// Open path: caps at ends, joins in between
		first := &segs[0]
		last := &segs[len(segs)-1]

		// Start cap (at first.A, direction = -T)
		r.addCap(first.A, first.T.Mul(-1), d)

		// Forward pass: +N side (right side of path direction)
		for i := range len(segs) {
			seg := &segs[i]
			r.stroke = append(r.stroke, seg.A.Add(seg.N.Mul(d)))
			if i < len(segs)-1 {
				next := &segs[i+1]
				sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
				r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
				if sinTheta <= -collinearityThreshold {
					// Left turn: +N is outer side
					r.addJoin(seg.B, seg.T, next.T, d, true)
				}
			} else {
				r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			}
		}

		// End cap (at last.B, direction = T)
		r.addCap(last.B, last.T, d)

		// Backward pass: -N side (left side of path direction)
		for i := len(segs) - 1; i >= 0; i-- {
			seg := &segs[i]
			r.stroke = append(r.stroke, seg.B.Sub(seg.N.Mul(d)))
			if i > 0 {
				prev := &segs[i-1]
				sinTheta := prev.T.X*seg.T.Y - prev.T.Y*seg.T.X
				r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
				if sinTheta >= collinearityThreshold {
					// Right turn: -N is outer side
					r.addJoin(seg.A, prev.T, seg.T, d, false)
				}
			} else {
				r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			}
		}
	}
}

// addCap adds a line cap to the stroke outline at point P.
// T is the outward tangent direction (away from the line).
// d is half the stroke width.
func (r *Rasterizer) addCap(P, T Point, d float32) {
	N := Point{X: -T.Y, Y: T.X} // normal (90° CCW from T)

	switch r.Cap {
	case CapButt:
		// Butt cap: just connect left and right offset points (already done by caller)
		// No additional points needed

	case CapSquare:
		// Square cap: extend by d along tangent
		ext := P.Add(T.Mul(d))
		left := ext.Add(N.Mul(d))
		right := ext.Sub(N.Mul(d))
		r.stroke = append(r.stroke, left, right)

	case CapRound:
		// Round cap: semicircular arc curving outward (through T direction)
		// Arc starts at N direction and sweeps CW (negative angle) to reach -N,
		// passing through T (the outward direction)
		// includeStart=true because cap's start point is not yet in the polygon
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// addJoin adds a line join at point P where tangent changes from T1 to T2.
// d is half the stroke width.
// isPositiveNormalSide indicates which side of the stroke we're building.
func (r *Rasterizer) addJoin(P, T1, T2 Point, d float32, isPositiveNormalSide bool) {
	// Compute angle between tangents
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X // cross product Z component

	// Skip if nearly collinear
	if sinTheta > -collinearityThreshold && sinTheta < collinearityThreshold {
		return
	}

	// Check for cusp (path doubling back on itself)
	if cosTheta < cuspCosineThreshold {
		// Emit two caps instead of a join
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	// The join geometry extends in the direction of the current side we're building.
	// isPositiveNormalSide tells us which side: +N (true) or -N (false).

	switch r.Join {
	case JoinMiter:
		// Check miter limit: miterLength = 1 / sin(φ/2)
		// where φ is the visual angle at the corner (interior angle of the stroke).
		// If θ is the angle between tangents (cosTheta = T1·T2), then φ = 180° - θ.
		// sin(φ/2) = sin(90° − θ/2) = cos(θ/2) = sqrt((1 + cosθ) / 2)
		sinHalf := float32(math.Sqrt((1 + float64(cosTheta)) / 2))
		// Use small tolerance for boundary cases (floating-point precision)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && float64(1/sinHalf) <= r.MiterLimit+miterEpsilon {
			// Miter join: compute miter point
			// The miter point is where the two offset lines intersect
			// Distance from P to miter point = d / sin(φ/2) = d / sinHalf
			N1 := Point{X: -T1.Y, Y: T1.X}
			N2 := Point{X: -T2.Y, Y: T2.X}

			// Bisector direction depends on which side we're building
			var bisector Point
			if isPositiveNormalSide {
				bisector = N1.Add(N2) // +N side
			} else {
				bisector = N1.Add(N2).Mul(-1) // -N side
			}
			bisectorLen := bisector.Length()
			if bisectorLen > zeroLengthThreshold {
				bisector = bisector.Mul(1 / bisectorLen)
				// Distance to miter point = d / sinHalf
				miterDist := d / sinHalf
				miterPt := P.Add(bisector.Mul(miterDist))
				r.stroke = append(r.stroke, miterPt)
			}
			return
		}
		// Fall through to bevel if miter limit exceeded
		fallthrough

	case JoinBevel:
		// Bevel join: just let the two offset lines meet (no additional points)
		// The caller already adds the necessary points
		return

	case JoinRound:
		// Round join: arc curving outward on the current side
		// includeStart=false because join's start point is already in the polygon
		angle := float32(math.Acos(max(-1, min(1, float64(cosTheta)))))
		if isPositiveNormalSide {
			// Forward pass: arc from +N of T1 to +N of T2
			N1 := Point{X: -T1.Y, Y: T1.X} // +N direction of T1
			// For +N side: right turn needs CCW arc, left turn needs CW arc
			if sinTheta > 0 {
				r.addArc(P, d, N1, angle, false)
			} else {
				r.addArc(P, d, N1, -angle, false)
			}
		} else {
			// Backward pass: we just added offset using T2's normal, so arc must
			// start from -N of T2 and go to -N of T1 (reversed direction)
			N2 := Point{X: T2.Y, Y: -T2.X} // -N direction of T2
			// Sweep direction is reversed from forward pass
			if sinTheta > 0 {
				r.addArc(P, d, N2, -angle, false)
			} else {
				r.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// arcQuadsPerConic is the number of quadratics ChopIntoQuadsPow2 produces
// per conic; addArc steps over its output two points at a time to keep
// only the points that lie exactly on the curve.
const arcQuadsPerConic = 1 << conicToQuadsPow2

// addArc adds arc vertices to the stroke outline, built from exact circular
// conic arcs (BuildUnitArc) rather than stepped trigonometric sampling: each
// conic produced for the turn is subdivided into 8 quadratics, and every
// on-curve endpoint (no control points) becomes a stroke-outline vertex.
// center is the arc center, radius is the arc radius. startDir is the unit
// vector from center to arc start. sweep is the sweep angle in radians
// (positive = CCW). includeStart indicates whether to include the start
// point (false if caller already added it).
func (r *Rasterizer) addArc(center Point, radius float32, startDir Point, sweep float32, includeStart bool) {
	devRadius := max(r.transformLinear(Point{X: radius}).Length(), r.transformLinear(Point{Y: radius}).Length())

	if float64(devRadius) < r.Flatness {
		// Arc too small to matter - just add end point (and start if needed)
		if includeStart {
			r.stroke = append(r.stroke, center.Add(startDir.Mul(radius)))
		}
		r.stroke = append(r.stroke, center.Add(rotateVec(startDir, sweep).Mul(radius)))
		return
	}

	cur := startDir
	remaining := sweep
	first := true
	for absF32(remaining) > 1e-6 {
		step := remaining
		if step > math.Pi {
			step = math.Pi
		} else if step < -math.Pi {
			step = -math.Pi
		}
		next := rotateVec(cur, step)

		// BuildUnitArc's CW sweeps toward increasing polar angle, which
		// is a positive step here.
		dir := CW
		if step < 0 {
			dir = CCW
		}

		var conics [MaxConicsForArc]Conic
		n := BuildUnitArc(cur, next, dir, Identity, conics[:])

		var quadPts [2*arcQuadsPerConic + 1]Point
		for ci := 0; ci < n; ci++ {
			ChopIntoQuadsPow2(conics[ci], quadPts[:])
			for k := 0; k <= 2*arcQuadsPerConic; k += 2 {
				if k == 0 && (!includeStart || !first) {
					continue
				}
				r.stroke = append(r.stroke, center.Add(quadPts[k].Mul(radius)))
			}
		}

		cur = next
		remaining -= step
		first = false
	}
}

// rotateVec rotates v by angle radians (CCW for positive angle).
func rotateVec(v Point, angle float32) Point {
	s, c := math.Sincos(float64(angle))
	sin, cos := float32(s), float32(c)
	return Point{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// addSquare adds a filled square to the stroke outline for a degenerate
// (zero-length) subpath with square caps. The square is centered at the
// point with side length = 2*d (i.e., the line width), oriented by T.
func (r *Rasterizer) addSquare(center, T Point, d float32) {
	N := Point{X: -T.Y, Y: T.X} // normal (90° CCW from T)
	// Four corners of the square
	r.stroke = append(r.stroke,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}

// fillStrokeOutlines fills all collected stroke polygons as a compound path.
// Using nonzero winding rule ensures overlapping regions are painted once.
func (r *Rasterizer) fillStrokeOutlines(emit func(y, xMin int, coverage []float32)) {
	if len(r.strokeOffsets) == 0 {
		return
	}

	// Collect edges directly from stroke polygons (no intermediate path allocation)
	xMin, xMax, yMin, yMax, ok := r.collectStrokeEdges()
	if !ok {
		return
	}

	r.fillEdges(xMin, xMax, yMin, yMax, fillNonZero, emit)
}

// collectStrokeEdges builds the edge list directly from stroke polygons.
// This avoids creating an intermediate path representation.
func (r *Rasterizer) collectStrokeEdges() (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true

	for i, start := range r.strokeOffsets {
		// Determine end of this polygon
		var end int
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		} else {
			end = len(r.stroke)
		}
		poly := r.stroke[start:end]
		if len(poly) < 2 {
			continue
		}

		// Add edges for each segment
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		// Close the polygon
		r.addEdge(poly[len(poly)-1], poly[0])
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	// Clamp to clip bounds and convert to integers
	clipXMin := int(r.Clip.LLx)
	clipXMax := int(r.Clip.URx)
	clipYMin := int(r.Clip.LLy)
	clipYMax := int(r.Clip.URy)

	xMin = max(int(math.Floor(r.edgeDevXMin)), clipXMin)
	xMax = min(int(math.Floor(r.edgeDevXMax))+1, clipXMax)
	yMin = max(int(math.Floor(r.edgeDevYMin)), clipYMin)
	yMax = min(int(math.Floor(r.edgeDevYMax))+1, clipYMax)

	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}

	return xMin, xMax, yMin, yMax, true
}
