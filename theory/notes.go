package theory

import (
	"fmt"
	"slices"
	"strings"
)

// Accidental is a flat or sharp alteration applied to a scale degree.
type Accidental int

const (
	Natural Accidental = iota
	Flat
	Sharp
)

// ParseAccidental maps "b" and "#" to Flat and Sharp. Anything else is Natural.
func ParseAccidental(s string) Accidental {
	switch s {
	case "b":
		return Flat
	case "#":
		return Sharp
	default:
		return Natural
	}
}

// Offset is the semitone adjustment of the accidental.
func (a Accidental) Offset() int {
	switch a {
	case Flat:
		return -1
	case Sharp:
		return 1
	default:
		return 0
	}
}

func (a Accidental) String() string {
	switch a {
	case Flat:
		return "b"
	case Sharp:
		return "#"
	default:
		return ""
	}
}

// Spelling selects which enharmonic name is used for black keys.
type Spelling int

const (
	SharpSpelling Spelling = iota
	FlatSpelling
)

// Pitch class names (0=C ... 11=B)
var (
	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// Keys whose signature is written with flats.
var flatKeySignatures = []string{"F", "Bb", "Eb", "Ab", "Db", "Gb"}

// Semitones from the root for degrees 1..7 of the major scale.
var majorScaleIntervals = [7]int{0, 2, 4, 5, 7, 9, 11}

// UseFlatsForKey reports whether notes in key are spelled with flats.
func UseFlatsForKey(key string) bool {
	if strings.Contains(key, "b") {
		return true
	}
	if strings.Contains(key, "#") {
		return false
	}
	return slices.Contains(flatKeySignatures, key)
}

// SpellingForKey is UseFlatsForKey as a Spelling.
func SpellingForKey(key string) Spelling {
	if UseFlatsForKey(key) {
		return FlatSpelling
	}
	return SharpSpelling
}

func (sp Spelling) names() *[12]string {
	if sp == FlatSpelling {
		return &flatNames
	}
	return &sharpNames
}

func (sp Spelling) other() Spelling {
	if sp == FlatSpelling {
		return SharpSpelling
	}
	return FlatSpelling
}

// NoteName returns the name of pitch class pc (taken mod 12) in the given spelling.
func NoteName(pc int, sp Spelling) string {
	return sp.names()[mod12(pc)]
}

// RootPitchClass finds the pitch class of a key root, looking in the preferred
// spelling first and the other spelling second.
func RootPitchClass(key string, sp Spelling) (int, bool) {
	if i := slices.Index(sp.names()[:], key); i >= 0 {
		return i, true
	}
	if i := slices.Index(sp.other().names()[:], key); i >= 0 {
		return i, true
	}
	return 0, false
}

// DegreeOffset is the semitone distance of an altered degree above the tonic, in 0..11.
func DegreeOffset(degree int, acc Accidental) (int, error) {
	if degree < 1 || degree > 7 {
		return 0, fmt.Errorf("%w: %w (degree %d)", ErrUnresolvableNote, ErrDegreeOutOfRange, degree)
	}
	return mod12(majorScaleIntervals[degree-1] + acc.Offset()), nil
}

// PitchClassOf resolves (key, degree, accidental) to a pitch class index in 0..11.
func PitchClassOf(key string, degree int, acc Accidental) (int, error) {
	return pitchClassSpelled(key, degree, acc, SpellingForKey(key))
}

func pitchClassSpelled(key string, degree int, acc Accidental, sp Spelling) (int, error) {
	offset, err := DegreeOffset(degree, acc)
	if err != nil {
		return 0, err
	}
	root, ok := RootPitchClass(key, sp)
	if !ok {
		return 0, fmt.Errorf("%w: root %q not found", ErrUnresolvableNote, key)
	}
	return mod12(root + offset), nil
}

// ResolveNote names the note at degree (altered by acc) in key, spelled per key convention.
func ResolveNote(key string, degree int, acc Accidental) (string, error) {
	return ResolveNoteSpelled(key, degree, acc, SpellingForKey(key))
}

// ResolveNoteSpelled is ResolveNote with the spelling fixed by the caller, so that
// several lookups within one conversion share a single convention.
func ResolveNoteSpelled(key string, degree int, acc Accidental, sp Spelling) (string, error) {
	pc, err := pitchClassSpelled(key, degree, acc, sp)
	if err != nil {
		return "", err
	}
	return NoteName(pc, sp), nil
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}
