// Package transpose converts Nashville Number System chord charts into
// chord names for a chosen key.
package transpose

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/nashville/logging"
	"github.com/RyanBlaney/nashville/notation"
	"github.com/RyanBlaney/nashville/transpose/config"
)

// Converter runs the scan, resolve and splice pipeline. It holds only
// immutable collaborators and is safe for concurrent use.
type Converter struct {
	scanner  *notation.Scanner
	resolver *Resolver
	render   Renderer
	logger   logging.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithScanner replaces the default token scanner.
func WithScanner(s *notation.Scanner) Option {
	return func(c *Converter) {
		if s != nil {
			c.scanner = s
		}
	}
}

// WithRenderer replaces the default HTML renderer.
func WithRenderer(r Renderer) Option {
	return func(c *Converter) {
		if r != nil {
			c.render = r
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewConverter creates a converter with the default scanner and the
// <span class="chord"> renderer unless overridden.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		scanner: notation.DefaultScanner(),
		render:  HTMLRenderer(DefaultChordClass),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.WithFields(logging.Fields{
			"component": "nns_converter",
		})
	}
	c.resolver = NewResolver(c.logger)
	return c
}

// NewConverterFromConfig builds a converter from cfg. Formats the engine does
// not know ("ansi") fall back to plain text unless a renderer option is given.
func NewConverterFromConfig(cfg *config.Config, opts ...Option) *Converter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	base := []Option{
		WithScanner(notation.NewScanner(notation.ScannerConfig{ExtraLabels: cfg.SectionLabels})),
	}
	switch cfg.Format {
	case config.FormatHTML:
		base = append(base, WithRenderer(HTMLRenderer(cfg.ChordClass)))
	case config.FormatBracket:
		base = append(base, WithRenderer(BracketRenderer))
	default:
		base = append(base, WithRenderer(PlainRenderer))
	}
	return NewConverter(append(base, opts...)...)
}

// Report describes one conversion call.
type Report struct {
	Key      string
	Text     string
	Results  []Result
	Resolved int
	Skipped  int
}

// Convert replaces every resolvable NNS token in text with a rendered chord
// in key. Unresolvable tokens are left as they are. An unsupported key
// returns text unchanged. Convert never panics.
func (c *Converter) Convert(text, key string) string {
	report, _ := c.ConvertReport(text, key)
	return report.Text
}

// ConvertReport is Convert with per-token results. The error is non-nil only
// for an unsupported key, in which case Report.Text is the original text.
func (c *Converter) ConvertReport(text, key string) (Report, error) {
	target, err := NewTarget(key)
	if err != nil {
		c.logger.Error(err, "Scale not found for key", logging.Fields{
			"key": key,
		})
		return Report{Key: key, Text: text}, err
	}

	report := Report{Key: key}
	var b strings.Builder
	b.Grow(len(text) + len(text)/2)

	last := 0
	for tok := range c.scanner.Scan(text) {
		res := c.resolver.Resolve(tok, target)
		replacement := tok.Text
		if res.Outcome == Resolved {
			if rendered, err := c.renderChord(res.Chord); err != nil {
				res = Result{Token: tok, Outcome: PassThrough, Err: err}
				c.logger.Warn("Could not render chord", logging.Fields{
					"token": tok.Text,
					"key":   key,
					"error": err.Error(),
				})
			} else {
				replacement = rendered
			}
		}

		if res.Outcome == Resolved {
			report.Resolved++
		} else {
			report.Skipped++
		}
		report.Results = append(report.Results, res)

		b.WriteString(text[last:tok.Start])
		b.WriteString(replacement)
		last = tok.End
	}
	b.WriteString(text[last:])
	report.Text = b.String()

	c.logger.Debug("NNS conversion completed", logging.Fields{
		"key":      key,
		"tokens":   len(report.Results),
		"resolved": report.Resolved,
		"skipped":  report.Skipped,
	})
	return report, nil
}

// renderChord isolates caller-supplied renderers that panic.
func (c *Converter) renderChord(chord ResolvedChord) (out string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: renderer: %v", ErrTokenResolution, p)
		}
	}()
	return c.render(chord), nil
}

// Convert converts text with a default converter. The converter is built per
// call so that diagnostics follow the current global logger.
func Convert(text, key string) string {
	return NewConverter().Convert(text, key)
}
