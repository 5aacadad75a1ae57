// Package chart holds the presentation-side state around the converter:
// which key a chart starts in and which key is currently selected.
package chart

import (
	"regexp"
	"slices"
	"strings"
)

var headerPattern = regexp.MustCompile(`(?i)^\s*original\s+key\s*:\s*(\S+)`)

// DetectKey reads an "Original Key: X" header from the first non-empty line
// of text. The key is accepted only when it is in supported.
func DetectKey(text string, supported []string) (string, bool) {
	for line := range strings.Lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := headerPattern.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		key := normalizeKeyName(strings.TrimRight(m[1], ".,;)"))
		if !slices.Contains(supported, key) {
			return "", false
		}
		return key, true
	}
	return "", false
}

// InitialKey picks the key a chart is first shown in: the header key, else
// fallback when supported, else C when supported, else the last supported key.
func InitialKey(text string, supported []string, fallback string) string {
	if key, ok := DetectKey(text, supported); ok {
		return key
	}
	if slices.Contains(supported, fallback) {
		return fallback
	}
	if slices.Contains(supported, "C") {
		return "C"
	}
	if len(supported) > 0 {
		return supported[len(supported)-1]
	}
	return fallback
}

// normalizeKeyName turns "bb" or "f#" into "Bb" and "F#".
func normalizeKeyName(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
