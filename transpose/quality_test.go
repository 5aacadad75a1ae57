package transpose

import (
	"testing"

	"github.com/RyanBlaney/nashville/theory"
	"github.com/stretchr/testify/assert"
)

func TestDecideQuality_Precedence(t *testing.T) {
	cases := []struct {
		mods     string
		altered  bool
		diatonic theory.Quality
		want     theory.Quality
	}{
		{"", false, theory.QualityMinor, theory.QualityMinor},
		{"", false, theory.QualityDiminished, theory.QualityDiminished},
		{"", true, theory.QualityMinor, theory.QualityMajor},
		{"7", true, theory.QualityMinor, theory.QualityMajor},
		{"m", true, theory.QualityMajor, theory.QualityMinor},
		{"m", false, theory.QualityMajor, theory.QualityMinor},
		{"min7", false, theory.QualityMajor, theory.QualityMinor},
		{"maj7", false, theory.QualityMinor, theory.QualityMajor},
		{"Δ7", false, theory.QualityMinor, theory.QualityMajor},
		{"dim", false, theory.QualityMajor, theory.QualityDiminished},
		{"°", false, theory.QualityMajor, theory.QualityDiminished},
		{"ø7", true, theory.QualityMajor, theory.QualityDiminished},
		// Diminished is checked before minor.
		{"mdim", false, theory.QualityMajor, theory.QualityDiminished},
		// An m that opens maj is not a minor marker.
		{"maj9", false, theory.QualityMinor, theory.QualityMajor},
		// Extensions alone keep the diatonic quality.
		{"sus4", false, theory.QualityMinor, theory.QualityMinor},
		{"add9", false, theory.QualityDiminished, theory.QualityDiminished},
		// Uppercase M is not a quality marker.
		{"M7", false, theory.QualityMinor, theory.QualityMinor},
		{"MAJ7", false, theory.QualityMinor, theory.QualityMajor},
	}
	for _, tc := range cases {
		got := decideQuality(tc.mods, tc.altered, tc.diatonic)
		assert.Equal(t, tc.want, got, "mods=%q altered=%v diatonic=%s", tc.mods, tc.altered, tc.diatonic)
	}
}

func TestStripQualityMarkers(t *testing.T) {
	cases := map[string]string{
		"":      "",
		"m":     "",
		"m7":    "7",
		"min7":  "7",
		"Min":   "",
		"maj7":  "7",
		"Δ7":    "7",
		"dim":   "",
		"dim7":  "7",
		"°7":    "7",
		"ø7":    "7",
		"mdim":  "",
		"sus4":  "sus4",
		"7sus4": "7sus4",
		"add9":  "add9",
		"m7b5":  "7b5",
		"mmaj7": "7",
		"M7":    "M7",
		"+":     "+",
	}
	for in, want := range cases {
		assert.Equal(t, want, stripQualityMarkers(in), "mods=%q", in)
	}
}
