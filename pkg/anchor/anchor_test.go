package anchor_test

import (
	"testing"

	"github.com/arthur-debert/dotsetup/pkg/anchor"
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign_DedupKeepsFirstOccurrence(t *testing.T) {
	input := []string{"export ZSH=\"$HOME/.oh-my-zsh\"", "plugins=(git)", "source $ZSH/oh-my-zsh.sh"}

	res, err := anchor.Align(input, "plugins=", anchor.ShellArray{}, []string{"git", "git", "macos"})
	require.NoError(t, err)

	assert.Equal(t, []string{"export ZSH=\"$HOME/.oh-my-zsh\"", "plugins=(git macos)", "source $ZSH/oh-my-zsh.sh"}, res.Lines)
	assert.True(t, res.Changed)
	assert.False(t, res.Appended)
	assert.Equal(t, []string{"git"}, res.Previous)
}

func TestAlign_CallerOrderIsAuthoritative(t *testing.T) {
	res, err := anchor.Align([]string{"plugins=(a b c)"}, "plugins=", anchor.ShellArray{}, []string{"c", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"plugins=(c a b)"}, res.Lines)
}

func TestAlign_Idempotent(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		prefix string
		format anchor.Format
		tokens []string
	}{
		{"shell array in place", []string{"a", "plugins=(git)", "b"}, "plugins=", anchor.ShellArray{}, []string{"git", "docker"}},
		{"shell array appended", []string{"a"}, "plugins=", anchor.ShellArray{}, []string{"git"}},
		{"empty file", nil, "plugins=", anchor.ShellArray{}, []string{"git"}},
		{"multi-line declaration", []string{"plugins=(", "  git", "  docker", ")", "x"}, "plugins=", anchor.ShellArray{}, []string{"git", "fzf"}},
		{"quoted tokens", []string{"plugins=(git)"}, "plugins=", anchor.ShellArray{}, []string{"two words", "it's", "x"}},
		{"comment suffix", []string{"plugins=(git) # managed"}, "plugins=", anchor.ShellArray{}, []string{"git", "macos"}},
		{"indented anchor", []string{"  plugins=(git)"}, "plugins=", anchor.ShellArray{}, []string{"macos"}},
		{"crlf", []string{"plugins=(git)\r", "x\r"}, "plugins=", anchor.ShellArray{}, []string{"macos"}},
		{"delimited quoted", []string{"export PATH=\"/bin:/usr/bin\""}, "export PATH=", anchor.Delimited{Separator: ":", Quote: "\""}, []string{"/opt/bin", "/bin"}},
		{"delimited spaced", []string{"langs = go, rust"}, "langs = ", anchor.Delimited{Separator: ", "}, []string{"go", "zig"}},
		{"empty token list", []string{"plugins=(git)"}, "plugins=", anchor.ShellArray{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once, err := anchor.Align(tt.input, tt.prefix, tt.format, tt.tokens)
			require.NoError(t, err)

			twice, err := anchor.Align(once.Lines, tt.prefix, tt.format, tt.tokens)
			require.NoError(t, err)

			assert.Equal(t, once.Lines, twice.Lines)
			assert.False(t, twice.Changed)
			assert.False(t, twice.Appended)
		})
	}
}

func TestAlign_Rewrites(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		prefix string
		format anchor.Format
		tokens []string
		want   []string
	}{
		{
			name:   "multi-line declaration collapses",
			input:  []string{"# plugins", "plugins=(", "  git # vcs", "  docker", ")", "source x"},
			prefix: "plugins=",
			format: anchor.ShellArray{},
			tokens: []string{"git", "docker"},
			want:   []string{"# plugins", "plugins=(git docker)", "source x"},
		},
		{
			name:   "appended after separator",
			input:  []string{"a"},
			prefix: "plugins=",
			format: anchor.ShellArray{},
			tokens: []string{"git"},
			want:   []string{"a", "", "plugins=(git)"},
		},
		{
			name:   "indentation and comment kept",
			input:  []string{"\tplugins=(git) # keep me"},
			prefix: "plugins=",
			format: anchor.ShellArray{},
			tokens: []string{"git", "fzf"},
			want:   []string{"\tplugins=(git fzf) # keep me"},
		},
		{
			name:   "commented anchor is not the anchor",
			input:  []string{"# plugins=(old)"},
			prefix: "plugins=",
			format: anchor.ShellArray{},
			tokens: []string{"git"},
			want:   []string{"# plugins=(old)", "", "plugins=(git)"},
		},
		{
			name:   "tokens needing quotes",
			input:  []string{"plugins=()"},
			prefix: "plugins=",
			format: anchor.ShellArray{},
			tokens: []string{"a b", "it's"},
			want:   []string{`plugins=('a b' 'it'\''s')`},
		},
		{
			name:   "delimited keeps trailing comment",
			input:  []string{`export PATH="/bin" # system`},
			prefix: "export PATH=",
			format: anchor.Delimited{Separator: ":", Quote: `"`},
			tokens: []string{"/opt/bin", "/bin", "/opt/bin"},
			want:   []string{`export PATH="/opt/bin:/bin" # system`},
		},
		{
			name:   "crlf ending kept",
			input:  []string{"plugins=(git)\r"},
			prefix: "plugins=",
			format: anchor.ShellArray{},
			tokens: []string{"macos"},
			want:   []string{"plugins=(macos)\r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := anchor.Align(tt.input, tt.prefix, tt.format, tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Lines)
		})
	}
}

func TestAlign_ShadowedAnchors(t *testing.T) {
	input := []string{"plugins=(a)", "x", "plugins=(b)"}
	res, err := anchor.Align(input, "plugins=", anchor.ShellArray{}, []string{"c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"plugins=(c)", "x", "plugins=(b)"}, res.Lines)
	assert.Equal(t, []int{3}, res.Shadowed)
}

func TestAlign_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		prefix   string
		format   anchor.Format
		tokens   []string
		wantCode errors.ErrorCode
	}{
		{"unbalanced single quote", []string{"plugins=(git 'oops)"}, "plugins=", anchor.ShellArray{}, []string{"git"}, errors.ErrUnparsableAnchor},
		{"unbalanced double quote", []string{`plugins=(git "oops)`}, "plugins=", anchor.ShellArray{}, []string{"git"}, errors.ErrUnparsableAnchor},
		{"missing close paren", []string{"plugins=(git", "docker"}, "plugins=", anchor.ShellArray{}, []string{"git"}, errors.ErrUnparsableAnchor},
		{"not an array", []string{"plugins=git"}, "plugins=", anchor.ShellArray{}, []string{"git"}, errors.ErrUnparsableAnchor},
		{"delimited unbalanced", []string{`PATH="/bin`}, "PATH=", anchor.Delimited{Separator: ":", Quote: `"`}, []string{"/bin"}, errors.ErrUnparsableAnchor},
		{"delimited token with separator", []string{`PATH="/bin"`}, "PATH=", anchor.Delimited{Separator: ":", Quote: `"`}, []string{"a:b"}, errors.ErrInvalidInput},
		{"token with newline", []string{"plugins=(git)"}, "plugins=", anchor.ShellArray{}, []string{"git", "x\ny"}, errors.ErrInvalidInput},
		{"token with carriage return", []string{"plugins=(git)"}, "plugins=", anchor.ShellArray{}, []string{"git\r"}, errors.ErrInvalidInput},
		{"delimited token with newline", []string{`PATH="/bin"`}, "PATH=", anchor.Delimited{Separator: ":", Quote: `"`}, []string{"/usr\nbin"}, errors.ErrInvalidInput},
		{"empty prefix", []string{"x"}, " ", anchor.ShellArray{}, []string{"git"}, errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := anchor.Align(tt.input, tt.prefix, tt.format, tt.tokens)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.Equal(t, tt.input, res.Lines)
			assert.False(t, res.Changed)
		})
	}
}

func TestCurrent(t *testing.T) {
	line, found, err := anchor.Current([]string{"x", "  plugins=(git \"two words\" c\\ d)"}, "plugins=", anchor.ShellArray{})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, line.Index)
	assert.Equal(t, 1, line.Span)
	assert.Equal(t, "  ", line.Indent)
	assert.Equal(t, []string{"git", "two words", "c d"}, line.Tokens)

	_, found, err = anchor.Current([]string{"x"}, "plugins=", anchor.ShellArray{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"git", "macos"}, anchor.Dedupe([]string{"git", "", "git", "macos", "git"}))
	assert.Empty(t, anchor.Dedupe(nil))
}

func TestLookup(t *testing.T) {
	f, err := anchor.Lookup("", "", "")
	require.NoError(t, err)
	assert.Equal(t, anchor.FormatShellArray, f.Name())

	f, err = anchor.Lookup("delimited", "", `"`)
	require.NoError(t, err)
	assert.Equal(t, anchor.Delimited{Separator: ",", Quote: `"`}, f)

	_, err = anchor.Lookup("yaml", "", "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
