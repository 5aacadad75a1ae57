package notation

// Token is one Nashville-number chord found in free text.
//
// Accidentals are kept as the raw text ("", "b" or "#") so that the scanner
// stays independent of the theory tables.
type Token struct {
	Text  string // full matched substring
	Start int    // byte offset of the first byte
	End   int    // byte offset one past the last byte

	Accidental string
	Degree     int
	Modifiers  string // quality and extension run, verbatim

	HasSlash        bool
	SlashAccidental string
	SlashDegree     int // any digit; values outside 1-7 are rejected at resolution
}

// Altered reports whether the main degree carries a flat or sharp.
func (t Token) Altered() bool {
	return t.Accidental != ""
}
