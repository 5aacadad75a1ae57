package transpose

import (
	"strings"

	"github.com/RyanBlaney/nashville/theory"
)

// Quality markers recognized in a token's modifier run. Word markers match
// case-insensitively; the single-letter minor marker is lowercase only so that
// an uppercase M passes through untouched.
var (
	diminishedMarkers = []string{"dim", "°", "ø"}
	majorMarkers      = []string{"maj", "Δ"}
)

// decideQuality applies the precedence: explicit diminished, explicit minor,
// explicit major, altered degree (major), then the diatonic quality.
func decideQuality(mods string, altered bool, diatonic theory.Quality) theory.Quality {
	switch {
	case firstMarker(mods, diminishedMarkers) >= 0:
		return theory.QualityDiminished
	case hasMinorMarker(mods):
		return theory.QualityMinor
	case firstMarker(mods, majorMarkers) >= 0:
		return theory.QualityMajor
	case altered:
		return theory.QualityMajor
	default:
		return diatonic
	}
}

// stripQualityMarkers removes the first diminished, major and minor marker
// from mods, leaving extensions in their original order.
func stripQualityMarkers(mods string) string {
	mods = removeFirstMarker(mods, diminishedMarkers)
	mods = removeFirstMarker(mods, majorMarkers)
	if start, end, ok := minorMarker(mods); ok {
		mods = mods[:start] + mods[end:]
	}
	return mods
}

func hasMinorMarker(mods string) bool {
	_, _, ok := minorMarker(mods)
	return ok
}

// minorMarker finds the first "min" or a lowercase "m" that does not open "maj".
func minorMarker(mods string) (start, end int, ok bool) {
	folded := asciiLower(mods)
	for i := 0; i < len(mods); i++ {
		if strings.HasPrefix(folded[i:], "min") {
			return i, i + 3, true
		}
		if mods[i] == 'm' && !strings.HasPrefix(folded[i:], "maj") {
			return i, i + 1, true
		}
	}
	return 0, 0, false
}

// firstMarker returns the byte offset of the leftmost marker in mods, or -1.
func firstMarker(mods string, markers []string) int {
	_, idx := leftmost(mods, markers)
	return idx
}

func removeFirstMarker(mods string, markers []string) string {
	marker, idx := leftmost(mods, markers)
	if idx < 0 {
		return mods
	}
	return mods[:idx] + mods[idx+len(marker):]
}

func leftmost(mods string, markers []string) (string, int) {
	folded := asciiLower(mods)
	best, bestIdx := "", -1
	for _, m := range markers {
		if i := strings.Index(folded, m); i >= 0 && (bestIdx < 0 || i < bestIdx) {
			best, bestIdx = m, i
		}
	}
	return best, bestIdx
}

// asciiLower folds A-Z only, keeping byte offsets aligned with the input.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
