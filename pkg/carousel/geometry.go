package carousel

import (
	"cmp"
	"math"
	"slices"
)

// majorityThreshold splits visible slides into majority and sliver
// candidates.
const majorityThreshold = 0.5

// Geometry is the slide layout for one measurement of the track. Slides sit
// contiguously from position 0; slide i covers [i*ItemWidth, (i+1)*ItemWidth)
// before the offset is applied.
type Geometry struct {
	TrackWidth   float64
	ItemsPerView int
	Count        int
}

// Measured reports whether the track has a usable width.
func (g Geometry) Measured() bool {
	return g.TrackWidth > 0 && !math.IsInf(g.TrackWidth, 0)
}

func (g Geometry) perView() int {
	return max(g.ItemsPerView, 1)
}

// ItemWidth is the width of a single slide, or 0 when unmeasured.
func (g Geometry) ItemWidth() float64 {
	if !g.Measured() {
		return 0
	}

	return g.TrackWidth / float64(g.perView())
}

// TotalWidth is the width of the whole slide strip.
func (g Geometry) TotalWidth() float64 {
	return float64(g.Count) * g.ItemWidth()
}

// MaxOffset is the largest offset that still keeps the viewport filled.
func (g Geometry) MaxOffset() float64 {
	if !g.Measured() {
		return 0
	}

	return math.Max(0, g.TotalWidth()-g.TrackWidth)
}

// Constrain clamps x into [0, MaxOffset]. NaN collapses to 0.
func (g Geometry) Constrain(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}

	return math.Min(math.Max(x, 0), g.MaxOffset())
}

// Visibility returns, for every slide, the fraction of its width inside the
// viewport at the given offset.
func (g Geometry) Visibility(offset float64) []float64 {
	iw := g.ItemWidth()
	out := make([]float64, g.Count)
	if iw == 0 {
		return out
	}

	for i := range out {
		left := float64(i)*iw - offset
		right := left + iw
		visible := math.Max(0, math.Min(g.TrackWidth, right)-math.Max(0, left))
		out[i] = math.Min(math.Max(visible/iw, 0), 1)
	}

	return out
}

type snapCandidate struct {
	index    int
	visible  float64
	distance int
}

// compareCandidates orders snap candidates. Within a partition the one
// closest to the viewport center wins. Across partitions a sliver within one
// slide of the center wins, so the track moves onto the slide already
// peeking in; otherwise the larger visible fraction wins.
func compareCandidates(a, b snapCandidate) int {
	aMajor := a.visible >= majorityThreshold
	bMajor := b.visible >= majorityThreshold

	if aMajor == bMajor {
		return cmp.Compare(a.distance, b.distance)
	}
	if !aMajor && a.distance <= 1 {
		return -1
	}
	if !bMajor && b.distance <= 1 {
		return 1
	}

	return cmp.Compare(b.visible, a.visible)
}

// BestSnapIndex returns the slide index the track should settle on. With a
// single slide per view it is the winning slide itself; with several it is
// the start index that centres the winner in the visible window.
func (g Geometry) BestSnapIndex(offset float64) int {
	iw := g.ItemWidth()
	if iw == 0 || g.Count == 0 {
		return 0
	}

	center := int(jsRound((offset + g.TrackWidth/2) / iw))

	var candidates []snapCandidate
	for i, v := range g.Visibility(offset) {
		if v <= 0 {
			continue
		}
		candidates = append(candidates, snapCandidate{
			index:    i,
			visible:  v,
			distance: abs(i - center),
		})
	}

	if len(candidates) == 0 {
		return g.CurrentIndex(offset)
	}

	slices.SortStableFunc(candidates, compareCandidates)
	best := candidates[0].index

	perView := g.perView()
	if perView == 1 {
		return clampInt(best, 0, g.Count-1)
	}

	return clampInt(best-perView/2, 0, max(0, g.Count-perView))
}

// CurrentIndex is the slide stop nearest to offset.
func (g Geometry) CurrentIndex(offset float64) int {
	iw := g.ItemWidth()
	if iw == 0 {
		return 0
	}

	return int(jsRound(offset / iw))
}

// StopCount is the number of distinct scroll stops, which is what the
// indicator dots enumerate.
func (g Geometry) StopCount() int {
	return max(1, g.Count-g.perView()+1)
}

// jsRound rounds half up, matching the browser's Math.round for the
// non-negative values used here.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func clampInt(x, lo, hi int) int {
	return min(max(x, lo), hi)
}
