package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RyanBlaney/nashville/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in a scratch directory with clean flags.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := executeTo(t, &out, stdin, args...)
	return out.String(), err
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func executeTo(t *testing.T, out io.Writer, stdin string, args ...string) error {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, env := range []string{"NNS_DEFAULT_KEY", "NNS_CHORD_CLASS", "NNS_FORMAT", "NNS_LOG_LEVEL"} {
		t.Setenv(env, "")
	}

	configPath, verbose = "", false
	convertKey, convertFormat, convertStrict = "", "", false
	statsJSON = false

	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestConvertStdinUsesHeaderKey(t *testing.T) {
	out, err := execute(t, "Original Key: D\n1 4 5/7 6m", "convert", "--format", "plain")
	require.NoError(t, err)
	assert.Equal(t, "Original Key: D\nD G A/C# Bm", out)
}

func TestConvertHeaderKeyOutsidePicker(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"F#", "F# B C#"},
		{"C#", "C# F# G#"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			out, err := execute(t, "Original Key: "+tt.key+"\n1 4 5", "convert", "--format", "plain")
			require.NoError(t, err)
			assert.Equal(t, "Original Key: "+tt.key+"\n"+tt.want, out)
		})
	}
}

func TestConvertExplicitKeyAndFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"plain", "Eb Ab Bb7"},
		{"bracket", "[Eb] [Ab] [Bb7]"},
		{"html", `<span class="chord">Eb</span> <span class="chord">Ab</span> <span class="chord">Bb7</span>`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := execute(t, "1 4 57", "convert", "-k", "Eb", "-f", tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.txt")
	require.NoError(t, os.WriteFile(path, []byte("Verse 1\n1 b7 4"), 0o644))

	out, err := execute(t, "", "convert", path, "--key", "C", "--format", "plain")
	require.NoError(t, err)
	assert.Equal(t, "Verse 1\nC Bb F", out)
}

func TestConvertUnsupportedKey(t *testing.T) {
	out, err := execute(t, "1 4 5", "convert", "--key", "H", "--format", "plain")
	require.NoError(t, err)
	assert.Equal(t, "1 4 5", out, "chart is echoed unchanged")

	_, err = execute(t, "1 4 5", "convert", "--key", "H", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported key")
}

func TestConvertRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "1", "convert", "--format", "pdf")
	assert.Error(t, err)
}

func TestConfigFileSectionLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_key: G\nformat: plain\nsection_labels: [Tag]\n"), 0o644))

	out, err := execute(t, "Tag 2\n1 2m", "convert", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "Tag 2\nG Am", out)
}

func TestKeysListsEverySupportedKey(t *testing.T) {
	out, err := execute(t, "", "keys")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 14)
	assert.True(t, strings.HasPrefix(lines[0], "C "))
	assert.Contains(t, lines[0], "default")
	assert.Contains(t, out, "F#  F# G#m A#m B C# D#m E#dim")
}

func TestStatsJSON(t *testing.T) {
	out, err := execute(t, "1 4 5 1", "stats", "--json")
	require.NoError(t, err)

	var p analysis.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, 4, p.Tokens)
	assert.Equal(t, analysis.ModeMajor, p.Mode)
}

func TestStatsText(t *testing.T) {
	out, err := execute(t, "6m 4 5 6m", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "tokens:     4 (4 resolved)")
	assert.Contains(t, out, "mode:       relative-minor")
	assert.Contains(t, out, "centers:    6m")
}

func TestStatsReportsWriteFailure(t *testing.T) {
	err := executeTo(t, failingWriter{}, "1 4 5", "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
