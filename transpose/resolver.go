package transpose

import (
	"fmt"

	"github.com/RyanBlaney/nashville/logging"
	"github.com/RyanBlaney/nashville/notation"
	"github.com/RyanBlaney/nashville/theory"
)

// Target is a validated target key with everything a conversion needs from
// the key table. One Target is built per conversion call.
type Target struct {
	Key      string
	Scale    theory.Scale
	Spelling theory.Spelling
}

// NewTarget validates key against the key table.
func NewTarget(key string) (Target, error) {
	scale, err := theory.LookupScale(key)
	if err != nil {
		return Target{}, err
	}
	return Target{Key: key, Scale: scale, Spelling: theory.SpellingForKey(key)}, nil
}

// spellingFor picks the one spelling used for both root and bass of tok.
// A flatted degree reads as a flat name (b7 in C is Bb, not A#) and a
// sharped one as a sharp name; otherwise the key convention applies.
// Only the main degree decides: the bass follows the chord, so 5/b7 in C
// is G/A# while b7/b3 is Bb/Eb.
func (t Target) spellingFor(tok notation.Token) theory.Spelling {
	switch theory.ParseAccidental(tok.Accidental) {
	case theory.Flat:
		return theory.FlatSpelling
	case theory.Sharp:
		return theory.SharpSpelling
	default:
		return t.Spelling
	}
}

// ResolvedChord is a chord symbol in a concrete key.
type ResolvedChord struct {
	Root      string
	Quality   theory.Quality
	Modifiers string // residual extensions, quality markers removed
	Bass      string // empty when there is no slash bass
}

// Symbol renders the chord as plain text, e.g. "F#m7/C#".
func (c ResolvedChord) Symbol() string {
	s := c.Root + c.Quality.Suffix() + c.Modifiers
	if c.Bass != "" {
		s += "/" + c.Bass
	}
	return s
}

func (c ResolvedChord) String() string {
	return c.Symbol()
}

// Outcome says what happened to one token.
type Outcome int

const (
	// Resolved tokens are replaced by their rendered chord.
	Resolved Outcome = iota
	// PassThrough tokens keep their original text.
	PassThrough
)

func (o Outcome) String() string {
	if o == Resolved {
		return "resolved"
	}
	return "pass-through"
}

// Result is the per-token outcome of resolution.
type Result struct {
	Token   notation.Token
	Outcome Outcome
	Chord   ResolvedChord

	// Err explains a PassThrough.
	Err error
	// BassErr is set when a slash segment was present but could not be
	// resolved; the chord is still Resolved, without a bass.
	BassErr error
}

// Resolver turns scanned tokens into chords for a target key. It is stateless.
type Resolver struct {
	logger logging.Logger
}

// NewResolver creates a resolver that reports skipped tokens to logger.
// A nil logger uses the global logger.
func NewResolver(logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.WithFields(logging.Fields{
			"component": "chord_resolver",
		})
	}
	return &Resolver{logger: logger}
}

// Resolve resolves tok in target. It never panics: any unexpected failure
// becomes a PassThrough result wrapping ErrTokenResolution.
func (r *Resolver) Resolve(tok notation.Token, target Target) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			res = Result{
				Token:   tok,
				Outcome: PassThrough,
				Err:     fmt.Errorf("%w: %q in key %s: %v", ErrTokenResolution, tok.Text, target.Key, p),
			}
			r.logger.Warn("Could not convert NNS chord", logging.Fields{
				"token": tok.Text,
				"key":   target.Key,
				"panic": fmt.Sprint(p),
			})
		}
	}()

	spelling := target.spellingFor(tok)
	root, err := theory.ResolveNoteSpelled(target.Key, tok.Degree, theory.ParseAccidental(tok.Accidental), spelling)
	if err != nil {
		r.logger.Warn("Unresolvable note, leaving token unchanged", logging.Fields{
			"token": tok.Text,
			"key":   target.Key,
			"error": err.Error(),
		})
		return Result{Token: tok, Outcome: PassThrough, Err: err}
	}

	chord := ResolvedChord{
		Root:      root,
		Quality:   decideQuality(tok.Modifiers, tok.Altered(), target.Scale.Quality(tok.Degree)),
		Modifiers: stripQualityMarkers(tok.Modifiers),
	}
	res = Result{Token: tok, Outcome: Resolved}

	if tok.HasSlash {
		bass, err := theory.ResolveNoteSpelled(target.Key, tok.SlashDegree, theory.ParseAccidental(tok.SlashAccidental), spelling)
		if err != nil {
			r.logger.Debug("Dropping unresolvable slash bass", logging.Fields{
				"token": tok.Text,
				"key":   target.Key,
				"error": err.Error(),
			})
			res.BassErr = err
		} else {
			chord.Bass = bass
		}
	}

	res.Chord = chord
	return res
}
