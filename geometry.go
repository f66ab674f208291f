package pointedit

import "math"

const (
	// DefaultHitThreshold is the Manhattan distance within which the pointer
	// is considered to be over an entity.
	DefaultHitThreshold = 20.0
	// DefaultMoveThreshold is the distance the pointer must travel after a
	// press before the press becomes a drag.
	DefaultMoveThreshold = 5.0
)

// SquaredDistance returns the squared Euclidean distance between p1 and p2.
func SquaredDistance(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return dx*dx + dy*dy
}

// ManhattanDistance returns |dx| + |dy|.
func ManhattanDistance(p1, p2 Point) float64 {
	return math.Abs(p1.X-p2.X) + math.Abs(p1.Y-p2.Y)
}

// IsNear reports whether p lies strictly within threshold of target, measured
// as Manhattan distance.
func IsNear(p, target Point, threshold float64) bool {
	return ManhattanDistance(p, target) < threshold
}

// FindNearestIndex returns the index of the first entity, in list order, that
// is near p. Returns -1 if no entity is within threshold. Overlapping entities
// therefore resolve to the one created earliest.
func FindNearestIndex(entities []Point, p Point, threshold float64) int {
	for i, e := range entities {
		if IsNear(p, e, threshold) {
			return i
		}
	}
	return -1
}

// IsInRectangle reports whether p lies inside the rectangle spanned by two
// opposite corners given in any order. Edges are inclusive.
func IsInRectangle(p, corner1, corner2 Point) bool {
	x1 := math.Min(corner1.X, corner2.X)
	x2 := math.Max(corner1.X, corner2.X)
	y1 := math.Min(corner1.Y, corner2.Y)
	y2 := math.Max(corner1.Y, corner2.Y)
	return p.X >= x1 && p.X <= x2 && p.Y >= y1 && p.Y <= y2
}

// hasMoved reports whether p is at least threshold away from start.
func hasMoved(p, start Point, threshold float64) bool {
	return SquaredDistance(p, start) >= threshold*threshold
}

// PointGrid returns points laid out every distance units inside a
// width x height area, leaving a margin of distance on each side. Columns are
// emitted left to right, each column top to bottom.
func PointGrid(width, height, distance float64) []Point {
	if distance <= 0 {
		return nil
	}
	var res []Point
	for x := distance; x <= width-distance; x += distance {
		for y := distance; y <= height-distance; y += distance {
			res = append(res, Point{X: x, Y: y})
		}
	}
	return res
}
