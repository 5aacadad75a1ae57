// Package notation finds Nashville Number System chord tokens inside
// arbitrary chord-sheet text.
package notation

import (
	"iter"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSectionLabels are words that, followed by one whitespace character,
// mark the next number as a section index ("Verse 1") rather than a chord.
var DefaultSectionLabels = []string{"Verse", "Chorus", "Bridge", "Instrumental", "Intro", "Outro", "Tag"}

// Token shape: accidental, degree, modifier run, optional slash bass.
// Word boundaries and label exclusion are checked outside the pattern.
var tokenPattern = regexp.MustCompile(
	`([b#]?)([1-7])` +
		`((?:(?i:maj|min|m|dim|sus|aug|add)|[-+Δ°ø][0-9]*|[0-9]+)*)` +
		`(?:/([b#]?)([0-9]))?`,
)

// modifierUnit is one repetition of the modifier run in tokenPattern.
var modifierUnit = regexp.MustCompile(`^(?:(?i:maj|min|m|dim|sus|aug|add)|[-+Δ°ø][0-9]*|[0-9]+)`)

// A digit right after one of these belongs to the preceding chord symbol
// ("F#7", "G+7"), never to a new token.
const chordContinuation = "#+-Δ°ø"

// ScannerConfig configures a Scanner.
type ScannerConfig struct {
	// SectionLabels replaces DefaultSectionLabels when non-nil.
	SectionLabels []string
	// ExtraLabels are appended to the label set.
	ExtraLabels []string
}

// Scanner locates NNS tokens. It holds only immutable configuration and is
// safe for concurrent use.
type Scanner struct {
	labels []string // lower-cased
}

// NewScanner builds a scanner from cfg.
func NewScanner(cfg ScannerConfig) *Scanner {
	base := cfg.SectionLabels
	if base == nil {
		base = DefaultSectionLabels
	}

	labels := make([]string, 0, len(base)+len(cfg.ExtraLabels))
	for _, l := range slices.Concat(base, cfg.ExtraLabels) {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" && !slices.Contains(labels, l) {
			labels = append(labels, l)
		}
	}
	return &Scanner{labels: labels}
}

var defaultScanner = NewScanner(ScannerConfig{})

// DefaultScanner returns the shared scanner using DefaultSectionLabels.
func DefaultScanner() *Scanner {
	return defaultScanner
}

// Labels returns the lower-cased section labels in effect.
func (s *Scanner) Labels() []string {
	return slices.Clone(s.labels)
}

// Scan yields the tokens of text in order. The sequence is lazy and can be
// ranged over any number of times with the same result.
func (s *Scanner) Scan(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		pos := 0
		for pos < len(text) {
			loc := tokenPattern.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}
			start, end := pos+loc[0], pos+loc[1]

			tok, ok := Token{}, s.accept(text, start, end)
			if ok {
				tok = buildToken(text, pos, loc)
			} else {
				tok, ok = s.shorter(text, pos, loc)
			}
			if !ok {
				// Matches always begin with an ASCII byte.
				pos = start + 1
				continue
			}

			if !yield(tok) {
				return
			}
			pos = tok.End
		}
	}
}

// Tokens collects Scan into a slice.
func (s *Scanner) Tokens(text string) []Token {
	return slices.Collect(s.Scan(text))
}

// shorter retries a rejected match without its slash segment and then with
// trailing modifier units dropped one at a time, so "5/7x" still yields "5".
// The longest prefix that ends on a word boundary wins.
func (s *Scanner) shorter(text string, offset int, loc []int) (Token, bool) {
	start := offset + loc[0]
	degreeEnd, modEnd := offset+loc[5], offset+loc[7]

	// Unit boundaries of the modifier run, longest first.
	ends := []int{modEnd}
	for i := degreeEnd; i < modEnd; {
		m := modifierUnit.FindStringIndex(text[i:modEnd])
		if m == nil || m[1] == 0 {
			break
		}
		i += m[1]
		if i < modEnd {
			ends = append(ends, i)
		}
	}
	ends = append(ends, degreeEnd)
	slices.Reverse(ends[1 : len(ends)-1])

	for _, end := range ends {
		if end == offset+loc[1] || !s.accept(text, start, end) {
			continue
		}
		sub := tokenPattern.FindStringSubmatchIndex(text[start:end])
		if sub == nil || sub[0] != 0 || sub[1] != end-start {
			continue
		}
		return buildToken(text, start, sub), true
	}
	return Token{}, false
}

func (s *Scanner) accept(text string, start, end int) bool {
	if start > 0 && isWordByte(text[start-1]) {
		return false
	}
	if r, _ := utf8.DecodeLastRuneInString(text[:start]); strings.ContainsRune(chordContinuation, r) {
		return false
	}
	if end < len(text) && isWordByte(text[end]) {
		return false
	}
	return !s.followsLabel(text[:start])
}

// followsLabel reports whether prefix ends in "<label><whitespace>".
func (s *Scanner) followsLabel(prefix string) bool {
	r, size := utf8.DecodeLastRuneInString(prefix)
	if size == 0 || !unicode.IsSpace(r) {
		return false
	}
	before := prefix[:len(prefix)-size]
	for _, label := range s.labels {
		if len(before) < len(label) {
			continue
		}
		if strings.EqualFold(before[len(before)-len(label):], label) {
			return true
		}
	}
	return false
}

// isWordByte mirrors the ASCII \w class.
func isWordByte(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}

func buildToken(text string, offset int, loc []int) Token {
	group := func(i int) string {
		if loc[2*i] < 0 {
			return ""
		}
		return text[offset+loc[2*i] : offset+loc[2*i+1]]
	}

	tok := Token{
		Text:       text[offset+loc[0] : offset+loc[1]],
		Start:      offset + loc[0],
		End:        offset + loc[1],
		Accidental: group(1),
		Degree:     int(group(2)[0] - '0'),
		Modifiers:  group(3),
	}
	if d := group(5); d != "" {
		tok.HasSlash = true
		tok.SlashAccidental = group(4)
		tok.SlashDegree = int(d[0] - '0')
	}
	return tok
}
