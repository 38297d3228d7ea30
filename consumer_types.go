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

// Rect is an axis-aligned clip rectangle in device space.
type Rect struct {
	LLx, LLy, URx, URy float32
}

// Verb identifies one path command; each verb consumes a fixed number
// of points from the Path's Coords slice (MoveTo and LineTo one,
// QuadTo two, CubeTo three, Close zero).
type Verb uint8

const (
	MoveTo Verb = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

// Path is a sequence of path commands plus the points they consume,
// the local replacement for the geometry package this module would
// otherwise depend on externally.
type Path struct {
	Cmds   []Verb
	Coords []Point
}

// Reset empties p for reuse without releasing its backing arrays.
func (p *Path) Reset() {
	p.Cmds = p.Cmds[:0]
	p.Coords = p.Coords[:0]
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	p.Cmds = append(p.Cmds, MoveTo)
	p.Coords = append(p.Coords, pt)
}

// LineTo appends a straight segment to pt.
func (p *Path) LineTo(pt Point) {
	p.Cmds = append(p.Cmds, LineTo)
	p.Coords = append(p.Coords, pt)
}

// QuadTo appends a quadratic Bézier segment with control point ctrl.
func (p *Path) QuadTo(ctrl, pt Point) {
	p.Cmds = append(p.Cmds, QuadTo)
	p.Coords = append(p.Coords, ctrl, pt)
}

// CubeTo appends a cubic Bézier segment with control points c0, c1.
func (p *Path) CubeTo(c0, c1, pt Point) {
	p.Cmds = append(p.Cmds, CubeTo)
	p.Coords = append(p.Coords, c0, c1, pt)
}

// ClosePath closes the current subpath back to its start point.
func (p *Path) ClosePath() {
	p.Cmds = append(p.Cmds, Close)
}

// LineCap selects the shape drawn at the unclosed ends of a stroke.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin selects the shape drawn where two stroked segments meet.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)
