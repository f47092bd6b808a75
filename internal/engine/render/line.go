package render

import "github.com/Faultbox/helios/pkg/math"

const (
	maxInt32 = 1<<31 - 1
	minInt32 = -1 << 31
)

// Line rasterizes the segment between two shaded vertices with an integer
// error-accumulator walk, emitting one Fragment per step including both
// endpoints. Depth is interpolated linearly in screen x with a guard for
// vertical segments. color is the display color the caller already
// evaluated for the segment. Fragments may land outside the framebuffer;
// the sink's bounds check is the only clipping applied.
func Line(a, b *ShadedVertex, color Color) []Fragment {
	startX := math.Clamp(a.Screen.X, minCoord, maxCoord)
	startY := math.Clamp(a.Screen.Y, minCoord, maxCoord)
	endX := math.Clamp(b.Screen.X, minCoord, maxCoord)
	endY := math.Clamp(b.Screen.Y, minCoord, maxCoord)

	x0 := int32(startX)
	y0 := int32(startY)
	x1 := int32(endX)
	y1 := int32(endY)

	dx := absInt32(satSub(x1, x0))
	dy := absInt32(satSub(y1, y0))

	sx := int32(-1)
	if x0 < x1 {
		sx = 1
	}
	sy := int32(-1)
	if y0 < y1 {
		sy = 1
	}

	var errAcc int32
	if dx > dy {
		errAcc = dx / 2
	} else {
		errAcc = -dy / 2
	}

	denom := endX - startX
	if math.Abs(denom) <= 0.0001 {
		denom = 1
	}

	var fragments []Fragment
	for {
		z := a.Screen.Z + (b.Screen.Z-a.Screen.Z)*(float32(x0)-startX)/denom
		fragments = append(fragments, Fragment{X: int(x0), Y: int(y0), Depth: z, Color: color})

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := errAcc
		if e2 > -dx {
			errAcc -= dy
			x0 += sx
		}
		if e2 < dy {
			errAcc += dx
			y0 += sy
		}
	}
	return fragments
}

// satSub subtracts b from a, saturating at the int32 limits instead of
// wrapping.
func satSub(a, b int32) int32 {
	d := int64(a) - int64(b)
	if d > maxInt32 {
		return maxInt32
	}
	if d < minInt32 {
		return minInt32
	}
	return int32(d)
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
