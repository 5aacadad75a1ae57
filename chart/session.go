package chart

import (
	"fmt"
	"slices"

	"github.com/RyanBlaney/nashville/theory"
	"github.com/RyanBlaney/nashville/transpose"
)

// KeyState is one entry of a key picker.
type KeyState struct {
	Key      string
	Selected bool
}

// Session is the state a key picker owns: the untouched chart source and the
// selected key. Every selection re-runs the stateless converter on the
// source. A Session is not safe for concurrent use.
type Session struct {
	source    string
	keys      []string
	current   string
	converter *transpose.Converter
}

// NewSession starts a session on source. keys is the picker order; empty
// means theory.DisplayKeys(). The initial key comes from InitialKey over every
// supported key, so an "Original Key: F#" header is honored even though F#
// is not in the default picker.
func NewSession(source string, conv *transpose.Converter, keys []string, fallback string) *Session {
	if conv == nil {
		conv = transpose.NewConverter()
	}
	if len(keys) == 0 {
		keys = theory.DisplayKeys()
	}
	return &Session{
		source:    source,
		keys:      slices.Clone(keys),
		current:   InitialKey(source, theory.SupportedKeys(), fallback),
		converter: conv,
	}
}

// Key is the selected key.
func (s *Session) Key() string {
	return s.current
}

// Source is the chart as loaded, before conversion.
func (s *Session) Source() string {
	return s.source
}

// SetSource replaces the chart, keeping the selected key.
func (s *Session) SetSource(source string) {
	s.source = source
}

// Render converts the source into the selected key.
func (s *Session) Render() string {
	return s.converter.Convert(s.source, s.current)
}

// Select switches to key and returns the re-rendered chart. Unsupported keys
// are rejected and the selection is left unchanged.
func (s *Session) Select(key string) (string, error) {
	if !theory.IsSupported(key) {
		return "", fmt.Errorf("select %q: %w", key, theory.ErrUnsupportedKey)
	}
	s.current = key
	return s.Render(), nil
}

// Step moves the selection by delta positions through the picker keys,
// wrapping at both ends. A current key outside the picker starts from index 0.
func (s *Session) Step(delta int) string {
	if len(s.keys) == 0 {
		return s.Render()
	}
	i := slices.Index(s.keys, s.current)
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%len(s.keys) + len(s.keys)) % len(s.keys)
	}
	s.current = s.keys[i]
	return s.Render()
}

// Keys lists the picker keys with the selected one flagged.
func (s *Session) Keys() []KeyState {
	states := make([]KeyState, len(s.keys))
	for i, k := range s.keys {
		states[i] = KeyState{Key: k, Selected: k == s.current}
	}
	return states
}
