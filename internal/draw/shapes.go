package draw

import "math"

// HeartSegments is the number of outline points generated per heart.
const HeartSegments = 32

// heartWidth is the width of the unscaled heart curve.
const heartWidth = 32.0

// HeartPoints fills dst with the outline of a heart centred on (cx, cy)
// whose width is size, in logical coordinates with y pointing down.
// dst is grown if needed and the used slice is returned.
func HeartPoints(dst []Point, cx, cy, size float64) []Point {
	if cap(dst) < HeartSegments {
		dst = make([]Point, HeartSegments)
	}
	dst = dst[:HeartSegments]

	scale := size / heartWidth
	for i := range dst {
		t := 2 * math.Pi * float64(i) / HeartSegments
		sin := math.Sin(t)
		x := 16 * sin * sin * sin
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		// The curve spans roughly y in [-17, 12]; shift so the bounding
		// box is centred, then flip for y-down.
		dst[i] = Point{
			X: cx + x*scale,
			Y: cy - (y+2.5)*scale,
		}
	}
	return dst
}
