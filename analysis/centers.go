package analysis

import (
	"cmp"
	"slices"
)

// maxCandidates bounds Profile.Centers.
const maxCandidates = 5

// degreeLabels names each semitone above the tonic as a chart degree.
var degreeLabels = [12]string{"1", "b2", "2", "b3", "3", "4", "#4", "5", "b6", "6", "b7", "7"}

// Center is one candidate tonal center, relative to degree 1.
type Center struct {
	Offset      int     `json:"offset"` // semitones above degree 1
	Minor       bool    `json:"minor"`
	Label       string  `json:"label"` // "1", "6m", "b7"
	Correlation float64 `json:"correlation"`
}

// rankCenters scores all 24 major and minor centers against hist, best first.
func rankCenters(hist []float64) []Center {
	centers := make([]Center, 0, 24)
	for offset := range 12 {
		centers = append(centers,
			Center{
				Offset:      offset,
				Label:       degreeLabels[offset],
				Correlation: correlate(hist, rotate(majorProfile, offset)),
			},
			Center{
				Offset:      offset,
				Minor:       true,
				Label:       degreeLabels[offset] + "m",
				Correlation: correlate(hist, rotate(minorProfile, offset)),
			},
		)
	}
	slices.SortStableFunc(centers, func(a, b Center) int {
		return cmp.Compare(b.Correlation, a.Correlation)
	})
	return centers
}

// clarity is (best - second) / best, 0 when the best score is not positive.
func clarity(ranked []Center) float64 {
	if len(ranked) < 2 || ranked[0].Correlation <= 0 {
		return 0
	}
	return (ranked[0].Correlation - ranked[1].Correlation) / ranked[0].Correlation
}
