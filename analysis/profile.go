// Package analysis measures the tonal shape of a Nashville number chart.
//
// Charts are key-independent, so every measure is taken relative to the
// tonic: a chart is resolved in C and its chord tones are folded into a
// 12-bin histogram of semitones above the tonic, which is then correlated
// with Krumhansl-Schmuckler probe-tone profiles.
package analysis

import (
	"math"

	"github.com/RyanBlaney/nashville/logging"
	"github.com/RyanBlaney/nashville/notation"
	"github.com/RyanBlaney/nashville/theory"
	"github.com/RyanBlaney/nashville/transpose"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Krumhansl-Schmuckler profiles (empirically derived), index 0 = tonic.
var (
	majorProfile = []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
	minorProfile = []float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}
)

// relativeMinorOffset is degree 6 of the major scale, in semitones.
const relativeMinorOffset = 9

// Mode is the tonal center a chart leans toward.
type Mode string

const (
	ModeMajor         Mode = "major"
	ModeRelativeMinor Mode = "relative-minor"
	ModeUnknown       Mode = "unknown"
)

// Profile summarizes a chart.
type Profile struct {
	Tokens    int `json:"tokens"`
	Resolved  int `json:"resolved"`
	Chromatic int `json:"chromatic"` // tokens with a flat or sharp degree
	Slash     int `json:"slash"`

	DegreeCounts [7]int `json:"degree_counts"` // index 0 = degree 1

	// Histogram is the chord-tone distribution in semitones above the tonic, summing to 1.
	Histogram []float64 `json:"histogram"`
	Entropy   float64   `json:"entropy"`

	MajorCorrelation float64 `json:"major_correlation"`
	MinorCorrelation float64 `json:"minor_correlation"` // against the relative minor (degree 6)
	Mode             Mode    `json:"mode"`

	// Centers are the best-scoring of all 24 major and minor centers, so a
	// chart that really sits on 5 or 2m shows it.
	Centers []Center `json:"centers,omitempty"`
	Clarity float64  `json:"clarity"` // (best - second) / best over all 24 centers
}

// ChromaticRatio is the share of tokens that alter a scale degree.
func (p Profile) ChromaticRatio() float64 {
	if p.Tokens == 0 {
		return 0
	}
	return float64(p.Chromatic) / float64(p.Tokens)
}

// Analyzer builds Profiles. It is stateless and safe for concurrent use.
type Analyzer struct {
	scanner  *notation.Scanner
	resolver *transpose.Resolver
	logger   logging.Logger
}

// NewAnalyzer creates an analyzer. Nil arguments select the defaults.
func NewAnalyzer(scanner *notation.Scanner, logger logging.Logger) *Analyzer {
	if scanner == nil {
		scanner = notation.DefaultScanner()
	}
	if logger == nil {
		logger = logging.WithFields(logging.Fields{
			"component": "chart_analyzer",
		})
	}
	return &Analyzer{
		scanner:  scanner,
		resolver: transpose.NewResolver(logger),
		logger:   logger,
	}
}

// Analyze profiles text. A chart without resolvable tokens yields
// ModeUnknown and zero correlations.
func (a *Analyzer) Analyze(text string) Profile {
	// C has pitch class 0, so a resolved root's pitch class is its distance from the tonic.
	target, err := transpose.NewTarget("C")
	if err != nil {
		a.logger.Error(err, "Reference key missing from key table")
		return Profile{Mode: ModeUnknown, Histogram: make([]float64, 12)}
	}

	p := Profile{Mode: ModeUnknown}
	hist := make([]float64, 12)

	for tok := range a.scanner.Scan(text) {
		p.Tokens++
		p.DegreeCounts[tok.Degree-1]++
		if tok.Altered() {
			p.Chromatic++
		}
		if tok.HasSlash {
			p.Slash++
		}

		res := a.resolver.Resolve(tok, target)
		if res.Outcome != transpose.Resolved {
			continue
		}
		root, ok := theory.RootPitchClass(res.Chord.Root, theory.SharpSpelling)
		if !ok {
			continue
		}
		p.Resolved++
		for _, interval := range triad(res.Chord.Quality) {
			hist[(root+interval)%12]++
		}
	}

	p.Histogram = hist
	total := floats.Sum(hist)
	if total == 0 {
		return p
	}
	floats.Scale(1/total, hist)

	p.Entropy = stat.Entropy(hist)
	p.MajorCorrelation = correlate(hist, majorProfile)
	p.MinorCorrelation = correlate(hist, rotate(minorProfile, relativeMinorOffset))
	if p.MajorCorrelation >= p.MinorCorrelation {
		p.Mode = ModeMajor
	} else {
		p.Mode = ModeRelativeMinor
	}

	ranked := rankCenters(hist)
	p.Clarity = clarity(ranked)
	p.Centers = ranked[:maxCandidates]

	a.logger.Debug("Chart profile computed", logging.Fields{
		"tokens":            p.Tokens,
		"major_correlation": p.MajorCorrelation,
		"minor_correlation": p.MinorCorrelation,
		"mode":              string(p.Mode),
		"center":            p.Centers[0].Label,
	})
	return p
}

// Analyze profiles text with a default Analyzer.
func Analyze(text string) Profile {
	return NewAnalyzer(nil, nil).Analyze(text)
}

func triad(q theory.Quality) []int {
	switch q {
	case theory.QualityMinor:
		return []int{0, 3, 7}
	case theory.QualityDiminished:
		return []int{0, 3, 6}
	default:
		return []int{0, 4, 7}
	}
}

// rotate moves index 0 of profile to index by.
func rotate(profile []float64, by int) []float64 {
	out := make([]float64, len(profile))
	for i, v := range profile {
		out[(i+by)%len(profile)] = v
	}
	return out
}

// correlate is Pearson correlation, 0 when either side is constant.
func correlate(a, b []float64) float64 {
	r := stat.Correlation(a, b, nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}
