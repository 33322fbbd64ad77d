package optimizer

// FitDimensions computes the dimensions that fit (w, h) inside a bounding
// constraint while preserving aspect ratio. At most one of maxW and maxH is
// honored; zero means unconstrained. An image already within the bound comes
// back unchanged. The scaled edge rounds down (floor) and never drops below
// one pixel.
func FitDimensions(w, h, maxW, maxH int) (int, int) {
	if maxW > 0 && w > maxW {
		return maxW, atLeastOne(int(float64(h) * float64(maxW) / float64(w)))
	}
	if maxH > 0 && h > maxH {
		return atLeastOne(int(float64(w) * float64(maxH) / float64(h))), maxH
	}
	return w, h
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
