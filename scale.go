package chart

// Scale maps v linearly from [srcMin, srcMax] to [dstMin, dstMax], inverted:
// srcMin maps to dstMax and srcMax maps to dstMin. With screen coordinates
// growing downward this draws higher values higher up.
//
// A zero-width (or non-finite) source range maps every value to the
// midpoint of the destination range.
func Scale(v, srcMin, srcMax, dstMin, dstMax float64) float64 {
	span := srcMax - srcMin
	if span == 0 || !isFinite(span) {
		return (dstMin + dstMax) / 2
	}
	t := (v - srcMin) / span
	return dstMin + (dstMax-dstMin)*(1-t)
}
