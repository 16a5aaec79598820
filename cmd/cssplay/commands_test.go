package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "argument",
			args: []string{"parse", "font-size: 20px; z-index: 10"},
			want: "{\n  \"fontSize\": \"20px\",\n  \"zIndex\": 10\n}\n",
		},
		{
			name:  "stdin",
			stdin: "color: red;",
			args:  []string{"parse"},
			want:  "{\n  \"color\": \"red\"\n}\n",
		},
		{
			name:  "dash reads stdin",
			stdin: "opacity: 1",
			args:  []string{"parse", "-"},
			want:  "{\n  \"opacity\": 1\n}\n",
		},
		{
			name: "nothing parses",
			args: []string{"parse", "no colon here"},
			want: "{}\n",
		},
		{
			name: "css",
			args: []string{"parse", "--format", "css", "z-index:10;font-size:20px"},
			want: "font-size: 20px; z-index: 10;\n",
		},
		{
			name: "inline",
			args: []string{"parse", "--format", "inline", "z-index:10;font-size:20px"},
			want: "font-size:20px;z-index:10\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestParseCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "", "parse", "--format", "yaml", "color: red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "yaml"`)
}

func TestShowCommand(t *testing.T) {
	out, err := execute(t, "", "show", "font-size")
	require.NoError(t, err)

	assert.Contains(t, out, "font-size\nText & Typography\n")
	assert.Contains(t, out, "Sets the font size.")
	assert.Contains(t, out, "Rule:\n  font-size: 20px;\n")
	assert.Contains(t, out, "Preview:\n  20px text")
}

func TestShowCommand_UnknownEntry(t *testing.T) {
	_, err := execute(t, "", "show", "zindex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown entry "zindex"`)
	assert.Contains(t, err.Error(), "did you mean z-index")
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Text & Typography\n")
	assert.Contains(t, out, "Grid\n")

	out, err = execute(t, "", "list", "--category", "grid")
	require.NoError(t, err)
	assert.Contains(t, out, "Grid\n")
	assert.NotContains(t, out, "Text & Typography")

	_, err = execute(t, "", "list", "--category", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "Nope"`)
}

func TestSearchCommand(t *testing.T) {
	out, err := execute(t, "", "search", "zindex")
	require.NoError(t, err)
	assert.Regexp(t, `^z-index\s+Layout & Position\n`, out)

	out, err = execute(t, "", "search", "qqqqqqqq")
	require.NoError(t, err)
	assert.Equal(t, "No entries match \"qqqqqqqq\"\n", out)
}

func TestLintCommand(t *testing.T) {
	// Warnings alone pass outside strict mode
	out, err := execute(t, "", "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "rule-property")

	out, err = execute(t, "", "lint", "--output-format", "json")
	require.NoError(t, err)

	var report struct {
		Summary struct {
			Errors  int `json:"errors"`
			Entries int `json:"entries_checked"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 0, report.Summary.Errors)
	assert.Equal(t, 97, report.Summary.Entries)

	_, err = execute(t, "", "lint", "--strict", "--quiet")
	require.ErrorIs(t, err, errLintFailed)
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "cssplay")

	_, err = execute(t, "", "completion", "tcsh")
	require.Error(t, err)
}
