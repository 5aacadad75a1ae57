package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestScanner_BareDegrees(t *testing.T) {
	tokens := DefaultScanner().Tokens("1 2 3 4 5 6 7 8 9 0")
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, texts(tokens))
	for i, tok := range tokens {
		assert.Equal(t, i+1, tok.Degree)
		assert.Empty(t, tok.Accidental)
		assert.Empty(t, tok.Modifiers)
		assert.False(t, tok.HasSlash)
	}
}

func TestScanner_CapturesFields(t *testing.T) {
	text := "| b7 #4 2maj7 4m 1sus4 6m7/5 5/b7 |"
	tokens := DefaultScanner().Tokens(text)
	require.Equal(t, []string{"b7", "#4", "2maj7", "4m", "1sus4", "6m7/5", "5/b7"}, texts(tokens))

	assert.Equal(t, "b", tokens[0].Accidental)
	assert.Equal(t, 7, tokens[0].Degree)
	assert.True(t, tokens[0].Altered())

	assert.Equal(t, "#", tokens[1].Accidental)
	assert.Equal(t, 4, tokens[1].Degree)

	assert.Equal(t, "maj7", tokens[2].Modifiers)
	assert.Equal(t, "sus4", tokens[4].Modifiers)

	assert.Equal(t, "m7", tokens[5].Modifiers)
	assert.True(t, tokens[5].HasSlash)
	assert.Equal(t, 5, tokens[5].SlashDegree)
	assert.Empty(t, tokens[5].SlashAccidental)

	assert.Equal(t, "b", tokens[6].SlashAccidental)
	assert.Equal(t, 7, tokens[6].SlashDegree)

	for _, tok := range tokens {
		assert.Equal(t, tok.Text, text[tok.Start:tok.End])
	}
}

func TestScanner_SymbolicAndCaseInsensitiveModifiers(t *testing.T) {
	tokens := DefaultScanner().Tokens("1Δ7 7° 7ø7 4MAJ7 2Min 5+")
	require.Equal(t, []string{"1Δ7", "7°", "7ø7", "4MAJ7", "2Min", "5+"}, texts(tokens))
	assert.Equal(t, "Δ7", tokens[0].Modifiers)
	assert.Equal(t, "MAJ7", tokens[3].Modifiers)
}

func TestScanner_WordBoundaries(t *testing.T) {
	// Digits glued to letters, other digits or underscores are not chords.
	tokens := DefaultScanner().Tokens("abc1 x5y 1x mp3 _4 Bb7 F#7 G+7 B7")
	assert.Empty(t, tokens)
}

func TestScanner_AccidentalIsCaseSensitive(t *testing.T) {
	tokens := DefaultScanner().Tokens("B7 b7")
	require.Len(t, tokens, 1)
	assert.Equal(t, "b7", tokens[0].Text)
}

func TestScanner_SectionLabelsSuppressNextNumber(t *testing.T) {
	tokens := DefaultScanner().Tokens("Verse 1 is here\nCHORUS 2: 4 5\nintro\t1 6")
	assert.Equal(t, []string{"4", "5", "6"}, texts(tokens))
}

func TestScanner_LabelNeedsExactlyOneWhitespace(t *testing.T) {
	// Two spaces between label and number: the number is a chord again.
	tokens := DefaultScanner().Tokens("Verse  1")
	assert.Equal(t, []string{"1"}, texts(tokens))
}

func TestScanner_ExtraLabels(t *testing.T) {
	s := NewScanner(ScannerConfig{ExtraLabels: []string{"Pre-Chorus", " Coda "}})
	tokens := s.Tokens("Pre-Chorus 2 Coda 3 Verse 4 5")
	assert.Equal(t, []string{"5"}, texts(tokens))
	assert.Contains(t, s.Labels(), "coda")
	assert.Contains(t, s.Labels(), "verse")
}

func TestScanner_ReplacedLabels(t *testing.T) {
	s := NewScanner(ScannerConfig{SectionLabels: []string{"Part"}})
	tokens := s.Tokens("Part 1 Verse 2")
	assert.Equal(t, []string{"2"}, texts(tokens))
}

func TestScanner_ScanIsRestartableAndLazy(t *testing.T) {
	text := "1 4 5 1"
	seq := DefaultScanner().Scan(text)

	var first, second []string
	for tok := range seq {
		first = append(first, tok.Text)
	}
	for tok := range seq {
		second = append(second, tok.Text)
	}
	assert.Equal(t, first, second)

	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestScanner_SlashWithOutOfRangeDigit(t *testing.T) {
	tokens := DefaultScanner().Tokens("5/9")
	require.Len(t, tokens, 1)
	assert.True(t, tokens[0].HasSlash)
	assert.Equal(t, 9, tokens[0].SlashDegree)
}

func TestScanner_UnicodeNeighbours(t *testing.T) {
	tokens := DefaultScanner().Tokens("→1 ♪4")
	assert.Equal(t, []string{"1", "4"}, texts(tokens))
}

func TestScanner_FallsBackToShorterBoundedMatch(t *testing.T) {
	tokens := DefaultScanner().Tokens("5/7x 6m7/5x 4-x")
	require.Equal(t, []string{"5", "6m7", "4"}, texts(tokens))

	assert.False(t, tokens[0].HasSlash)
	assert.Equal(t, "m7", tokens[1].Modifiers)
	assert.False(t, tokens[1].HasSlash)
	assert.Empty(t, tokens[2].Modifiers)

	for _, tok := range tokens {
		assert.Equal(t, tok.Text, "5/7x 6m7/5x 4-x"[tok.Start:tok.End])
	}
}

func TestScanner_NoBoundedPrefixMeansNoToken(t *testing.T) {
	// Every prefix of these is followed by a word character.
	assert.Empty(t, DefaultScanner().Tokens("1sus4x 2m_ 4maj7y"))
}

func TestScanner_HyphenBindsToTheChord(t *testing.T) {
	// "-5" is a modifier, so "4-5" is one chord rather than two; symbolic
	// marks would otherwise never attach to a token.
	tokens := DefaultScanner().Tokens("4-5 7ø 1Δ")
	require.Equal(t, []string{"4-5", "7ø", "1Δ"}, texts(tokens))
	assert.Equal(t, "-5", tokens[0].Modifiers)
}
