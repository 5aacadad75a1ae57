// Package theory holds the static music-theory tables used by the transposer:
// the diatonic chord table for each supported major key and the pitch-class
// arithmetic that turns a scale degree into a note name.
package theory

import (
	"fmt"
	"slices"
	"strings"
)

// Quality is the triad character of a chord.
type Quality int

const (
	QualityMajor Quality = iota
	QualityMinor
	QualityDiminished
)

// Suffix is the chord-symbol text for the quality. Major renders as nothing.
func (q Quality) Suffix() string {
	switch q {
	case QualityMinor:
		return "m"
	case QualityDiminished:
		return "dim"
	default:
		return ""
	}
}

func (q Quality) String() string {
	switch q {
	case QualityMinor:
		return "minor"
	case QualityDiminished:
		return "diminished"
	default:
		return "major"
	}
}

// Scale is the ordered diatonic chord sequence of a major key.
// Index 0 is degree 1, index 6 is degree 7.
type Scale [7]string

// Chord returns the diatonic chord name for a 1-based degree.
func (s Scale) Chord(degree int) (string, bool) {
	if degree < 1 || degree > 7 {
		return "", false
	}
	return s[degree-1], true
}

// Quality derives the diatonic quality of a degree from its stored chord name.
func (s Scale) Quality(degree int) Quality {
	chord, ok := s.Chord(degree)
	if !ok {
		return QualityMajor
	}
	return qualityOfChordName(chord)
}

func qualityOfChordName(chord string) Quality {
	switch {
	case strings.Contains(chord, "dim"):
		return QualityDiminished
	case strings.Contains(chord, "m"):
		return QualityMinor
	default:
		return QualityMajor
	}
}

// Format: [1, 2m, 3m, 4, 5, 6m, 7dim]
var scales = map[string]Scale{
	"C":  {"C", "Dm", "Em", "F", "G", "Am", "Bdim"},
	"Db": {"Db", "Ebm", "Fm", "Gb", "Ab", "Bbm", "Cdim"},
	"D":  {"D", "Em", "F#m", "G", "A", "Bm", "C#dim"},
	"Eb": {"Eb", "Fm", "Gm", "Ab", "Bb", "Cm", "Ddim"},
	"E":  {"E", "F#m", "G#m", "A", "B", "C#m", "D#dim"},
	"F":  {"F", "Gm", "Am", "Bb", "C", "Dm", "Edim"},
	"Gb": {"Gb", "Abm", "Bbm", "Cb", "Db", "Ebm", "Fdim"},
	"G":  {"G", "Am", "Bm", "C", "D", "Em", "F#dim"},
	"Ab": {"Ab", "Bbm", "Cm", "Db", "Eb", "Fm", "Gdim"},
	"A":  {"A", "Bm", "C#m", "D", "E", "F#m", "G#dim"},
	"Bb": {"Bb", "Cm", "Dm", "Eb", "F", "Gm", "Adim"},
	"B":  {"B", "C#m", "D#m", "E", "F#", "G#m", "A#dim"},
	"C#": {"C#", "D#m", "E#m", "F#", "G#", "A#m", "B#dim"},
	"F#": {"F#", "G#m", "A#m", "B", "C#", "D#m", "E#dim"},
}

// Only C#/Db and F#/Gb are registered. G#/Ab, A#/Bb and D#/Eb have a single
// spelling in the table and their missing side stays unsupported.
var enharmonicAliases = map[string]string{
	"C#": "Db",
	"Db": "C#",
	"F#": "Gb",
	"Gb": "F#",
}

var supportedKeys = []string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B", "C#", "F#"}

var displayKeys = []string{"Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B", "C"}

// LookupScale returns the diatonic chords of key. An exact match wins, then
// the registered enharmonic alias. Anything else is ErrUnsupportedKey.
func LookupScale(key string) (Scale, error) {
	if s, ok := scales[key]; ok {
		return s, nil
	}
	if alias, ok := enharmonicAliases[key]; ok {
		if s, ok := scales[alias]; ok {
			return s, nil
		}
	}
	return Scale{}, fmt.Errorf("%w: %q", ErrUnsupportedKey, key)
}

// IsSupported reports whether LookupScale would succeed for key.
func IsSupported(key string) bool {
	_, err := LookupScale(key)
	return err == nil
}

// SupportedKeys lists every valid target key: twelve letter keys plus the
// sharp-spelled C# and F#.
func SupportedKeys() []string {
	return slices.Clone(supportedKeys)
}

// DisplayKeys lists the keys offered by a key picker, in picker order.
func DisplayKeys() []string {
	return slices.Clone(displayKeys)
}
