// Package physics provides distance utilities for the collection rule.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSquared(x1, y1, x2, y2))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// WithinRadius reports whether a point lies strictly inside a circle.
// Points exactly on the boundary are outside.
func WithinRadius(px, py, cx, cy, radius float64) bool {
	return Distance(px, py, cx, cy) < radius
}
