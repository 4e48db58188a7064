package util

import (
	"github.com/fogleman/ease"
)

// Interpolate maps v from the range [inLow, inHigh] onto [outLow, outHigh]
// linearly, clamping to the output range when v falls outside the input range.
func Interpolate(v, inLow, inHigh, outLow, outHigh float64) float64 {
	return InterpolateEased(v, inLow, inHigh, outLow, outHigh, ease.Linear)
}

// InterpolateEased maps v from [inLow, inHigh] onto [outLow, outHigh] through
// an easing curve. Progress is clamped to [0, 1] before easing, so the output
// saturates at the range ends rather than extrapolating.
func InterpolateEased(v, inLow, inHigh, outLow, outHigh float64, fn ease.Function) float64 {
	t := (v - inLow) / (inHigh - inLow)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return outLow + (outHigh-outLow)*fn(t)
}

// InterpolateStops maps v through a piecewise-linear table of breakpoints.
// in must be sorted ascending and the same length as out; values outside the
// table clamp to the first/last output.
func InterpolateStops(v float64, in []float64, out []float64) float64 {
	if v <= in[0] {
		return out[0]
	}

	for i := 0; i < len(in)-1; i++ {
		if v <= in[i+1] {
			return Interpolate(v, in[i], in[i+1], out[i], out[i+1])
		}
	}

	// Past the last stop.
	return out[len(out)-1]
}
