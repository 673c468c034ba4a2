// Package playback decides which reel in a scrolling feed should be
// playing, from how much of each reel is inside the viewport.
package playback

// DefaultThreshold is the fraction of a reel that must be visible before
// it is eligible to play.
const DefaultThreshold = 0.75

// Visibility returns the fraction of an item that lies inside the
// viewport, in [0,1]. Positions are in the same unit (terminal lines in
// the viewer). Zero-height items are never visible.
func Visibility(itemTop, itemHeight, viewTop, viewHeight int) float64 {
	if itemHeight <= 0 || viewHeight <= 0 {
		return 0
	}

	top := max(itemTop, viewTop)
	bottom := min(itemTop+itemHeight, viewTop+viewHeight)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(itemHeight)
}

// VisibilityAll computes Visibility for a column of equally tall items
// stacked from offset 0, with the viewport scrolled to viewTop.
func VisibilityAll(count, itemHeight, viewTop, viewHeight int) []float64 {
	ratios := make([]float64, count)
	for i := range ratios {
		ratios[i] = Visibility(i*itemHeight, itemHeight, viewTop, viewHeight)
	}
	return ratios
}

// SelectActive picks the element that should play: the highest ratio at
// or above threshold, ties going to the earliest element. It reports
// false when nothing reaches the threshold.
func SelectActive(ratios []float64, threshold float64) (int, bool) {
	best := -1
	for i, r := range ratios {
		if r < threshold {
			continue
		}
		if best < 0 || r > ratios[best] {
			best = i
		}
	}
	return best, best >= 0
}
