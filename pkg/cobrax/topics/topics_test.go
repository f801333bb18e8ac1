package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/dry-run.txt":        {Data: []byte("Information about dry-run mode")},
		"help/manifest.md":        {Data: []byte("# Manifest\n\nDeclares targets")},
		"help/option-format.txt":  {Data: []byte("Output formats")},
		"help/config.txxt":        {Data: []byte("Configuration Guide")},
		"help/ignore.json":        {Data: []byte("{}")},
		"help/nested/markers.txt": {Data: []byte("Marker lines")},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		present    []string
		absent     []string
	}{
		{
			name:    "default extensions",
			present: []string{"dry-run", "manifest", "option-format", "markers"},
			absent:  []string{"config", "ignore"},
		},
		{
			name:       "custom extensions",
			extensions: []string{".txt", ".md", ".txxt"},
			present:    []string{"dry-run", "manifest", "config"},
			absent:     []string{"ignore"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(testFS(), "help", Options{Extensions: tt.extensions})
			require.NoError(t, err)
			for _, name := range tt.present {
				_, ok := m.Get(name)
				assert.True(t, ok, name)
			}
			for _, name := range tt.absent {
				_, ok := m.Get(name)
				assert.False(t, ok, name)
			}
		})
	}
}

func TestLoad_MissingRoot(t *testing.T) {
	m, err := Load(testFS(), "nope", Options{})
	require.NoError(t, err)
	assert.Empty(t, m.Names())
}

func TestGet_FlagStyle(t *testing.T) {
	m, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)

	topic, ok := m.Get("--format")
	require.True(t, ok)
	assert.Equal(t, "Output formats", topic.Content)

	topic, ok = m.Get("--dry-run")
	require.True(t, ok)
	assert.Equal(t, "dry-run", topic.Name)
}

func TestGlamourRenderer(t *testing.T) {
	r := GlamourRenderer{Width: 60}

	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))
	assert.Contains(t, r.Render("# Manifest\n\nDeclares targets", ".md"), "Declares targets")
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "apply", Short: "Apply things", Run: func(*cobra.Command, []string) {}})

	m, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)
	m.Install(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInstall(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "list topics",
			args: []string{"help", "topics"},
			want: []string{"General topics:", "  manifest", "Option topics:", "  --format", "app help <topic>"},
		},
		{
			name: "show topic",
			args: []string{"help", "dry-run"},
			want: []string{"Information about dry-run mode"},
		},
		{
			name: "command help",
			args: []string{"help", "apply"},
			want: []string{"Apply things"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			for _, want := range tt.want {
				assert.True(t, strings.Contains(out.String(), want), "want %q in %q", want, out.String())
			}
		})
	}
}
