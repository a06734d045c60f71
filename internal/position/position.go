// Package position describes locations inside source files: a single
// Position and a Region spanning two of them.
package position

import "fmt"

// Position is a point in a source file. Line is 1-based; any field set to
// -1 is unknown.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Unknown is the sentinel position used when nothing is known.
var Unknown = Position{Line: -1, Column: -1, Offset: -1}

// AtLine returns a position which only knows its line.
func AtLine(line int) Position {
	return Position{Line: line, Column: -1, Offset: -1}
}

// IsKnown reports whether at least the line is known.
func (p Position) IsKnown() bool {
	return p.Line >= 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d@%d", p.Line, p.Column, p.Offset)
}

// Region spans from Start to End, both inclusive.
type Region struct {
	Start Position
	End   Position
}

// UnknownRegion has both ends set to Unknown.
var UnknownRegion = Region{Start: Unknown, End: Unknown}

// LineRegion returns a region covering the given line only.
func LineRegion(line int) Region {
	return Region{Start: AtLine(line), End: AtLine(line)}
}

// Between creates a region from two positions.
func Between(start, end Position) Region {
	return Region{Start: start, End: end}
}

// Line returns the line at which the region starts.
func (r Region) Line() int {
	return r.Start.Line
}

func (r Region) String() string {
	return fmt.Sprintf("[%s, %s]", r.Start, r.End)
}
