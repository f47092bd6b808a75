package math

import "github.com/chewxy/math32"

// Pi is the circle constant as a float32.
const Pi = math32.Pi

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Acos returns the arccosine of x in radians.
func Acos(x float32) float32 {
	return math32.Acos(x)
}

// Asin returns the arcsine of x in radians.
func Asin(x float32) float32 {
	return math32.Asin(x)
}

// Atan2 returns the arc tangent of y/x, using the signs of both to
// determine the quadrant.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Cos returns the cosine of x (radians).
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Sin returns the sine of x (radians).
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Tan returns the tangent of x (radians).
func Tan(x float32) float32 {
	return math32.Tan(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Fract returns the fractional part of x (x - Floor(x)).
func Fract(x float32) float32 {
	return x - math32.Floor(x)
}

// Pow returns x raised to the power y.
func Pow(x, y float32) float32 {
	return math32.Pow(x, y)
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) float32 {
	return math32.Inf(sign)
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp returns the linear interpolation from a to b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
