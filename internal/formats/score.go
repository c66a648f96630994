package formats

import (
	"github.com/samber/lo"

	"streamresolve/internal/innertube"
)

// preferredItags are the platform's progressive MP4 renditions: single
// files carrying both tracks with a direct URL, highest quality first.
// The position-based bonus guarantees these always outrank unknown itags.
var preferredItags = []int{37, 22, 59, 18}

const (
	preferenceWeight = 10000

	// Resolutions above 720 belong to audio-less adaptive renditions in the
	// platform's taxonomy, so the resolution term stops rewarding there.
	resolutionCap    = 720
	resolutionWeight = 10

	// Bitrate is only a tie-breaker; the cap keeps it from overwhelming
	// the resolution term.
	bitrateCap = 3_000_000

	// primaryContainer is the muxed-friendly container preferred for
	// playback compatibility.
	primaryContainer = "video/mp4"
)

// Score ranks one format. All terms are additive; the preference bonus
// dominates resolution, which in turn dominates bitrate.
func Score(f innertube.Format) float64 {
	var score float64

	if pos := lo.IndexOf(preferredItags, f.Itag); pos >= 0 {
		score += float64((len(preferredItags)-pos)*preferenceWeight)
	}

	height := f.Height
	if height > resolutionCap {
		height = resolutionCap
	}
	score += float64(height * resolutionWeight)

	bitrate := f.Bitrate
	if bitrate > bitrateCap {
		bitrate = bitrateCap
	}
	score += float64(bitrate) / 1000

	return score
}

// SelectBest picks the highest-scoring format. When at least one format
// uses the primary container, the pool is restricted to those first. Ties
// keep the earliest format in aggregation order.
func SelectBest(aggregated []innertube.Format) (innertube.Format, bool) {
	if len(aggregated) == 0 {
		return innertube.Format{}, false
	}

	pool := lo.Filter(aggregated, func(f innertube.Format, _ int) bool {
		return Classify(f).Container == primaryContainer
	})
	if len(pool) == 0 {
		pool = aggregated
	}

	best := pool[0]
	bestScore := Score(best)
	for _, f := range pool[1:] {
		if s := Score(f); s > bestScore {
			best = f
			bestScore = s
		}
	}
	return best, true
}
