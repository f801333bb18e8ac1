package manifest

import (
	"testing"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/region"
	"github.com/arthur-debert/dotsetup/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlManifest = `
[[block]]
file = "~/.zshrc"
name = "fzf shell integration"
lines = ["source <(fzf --zsh)"]

[[block]]
file = "conf/app.ini"
start = "; BEGIN app"
end = "; END app"
lines = ["key = value"]

[[anchor]]
file = "~/.zshrc"
prefix = "plugins="
tokens = ["git", "macos"]

[[cron]]
name = "ssh backup"
  [[cron.jobs]]
  schedule = "0 2 * * 0"
  command = "~/.local/bin/ssh_backup.sh"
  description = "Weekly SSH backup"

[[launch_agent]]
label = "com.example.KeyRemapping"
program = ["/usr/bin/hidutil", "property", "--set", "{}"]
run_at_load = true

[[note]]
title = "iTerm2"
body = "Enable natural text editing"
`

const yamlManifest = `
block:
  - file: ~/.zshrc
    name: fzf shell integration
    lines:
      - source <(fzf --zsh)
  - file: conf/app.ini
    start: "; BEGIN app"
    end: "; END app"
    lines:
      - key = value
anchor:
  - file: ~/.zshrc
    prefix: plugins=
    tokens: [git, macos]
cron:
  - name: ssh backup
    jobs:
      - schedule: "0 2 * * 0"
        command: ~/.local/bin/ssh_backup.sh
        description: Weekly SSH backup
launch_agent:
  - label: com.example.KeyRemapping
    program: [/usr/bin/hidutil, property, --set, "{}"]
    run_at_load: true
note:
  - title: iTerm2
    body: Enable natural text editing
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "toml", file: "dotsetup/manifest.toml", content: tomlManifest},
		{name: "yaml", file: "dotsetup/manifest.yaml", content: yamlManifest},
		{name: "yml", file: "dotsetup/manifest.yml", content: yamlManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			path := env.WriteFile(tt.file, tt.content)

			m, err := Load(env.FS, path)
			require.NoError(t, err)

			assert.Equal(t, path, m.Source)
			require.Len(t, m.Blocks, 2)
			assert.Equal(t, env.Path(".zshrc"), m.Blocks[0].File)
			assert.Equal(t, env.Path("dotsetup/conf/app.ini"), m.Blocks[1].File, "relative to the manifest")
			assert.Equal(t, region.SectionMarkers("fzf shell integration", "#"), m.Blocks[0].Markers("#"))
			assert.Equal(t, region.Markers{Start: "; BEGIN app", End: "; END app"}, m.Blocks[1].Markers("#"))

			require.Len(t, m.Anchors, 1)
			assert.Equal(t, []string{"git", "macos"}, m.Anchors[0].Tokens)

			require.Len(t, m.Cron, 1)
			require.Len(t, m.Cron[0].Jobs, 1)
			assert.Equal(t, "Weekly SSH backup", m.Cron[0].Jobs[0].Description)

			require.Len(t, m.LaunchAgents, 1)
			assert.True(t, m.LaunchAgents[0].RunAtLoad)
			require.Len(t, m.Notes, 1)
			assert.False(t, m.Empty())
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode errors.ErrorCode
	}{
		{name: "missing file", file: "", wantCode: errors.ErrManifestLoad},
		{name: "unknown extension", file: "m.json", content: "{}", wantCode: errors.ErrManifestLoad},
		{name: "bad toml", file: "m.toml", content: "[[block]\n", wantCode: errors.ErrManifestLoad},
		{name: "unknown key", file: "m.toml", content: "[[block]]\nfile = \"x\"\nname = \"n\"\nlinez = []\n", wantCode: errors.ErrManifestLoad},
		{name: "invalid target", file: "m.yaml", content: "anchor:\n  - file: x\n", wantCode: errors.ErrManifestInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			path := env.Path("missing.toml")
			if tt.file != "" {
				path = env.WriteFile(tt.file, tt.content)
			}

			_, err := Load(env.FS, path)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
		})
	}
}

func TestParseEmptyYAML(t *testing.T) {
	m, err := Parse(nil, ".yaml")
	require.NoError(t, err)
	assert.True(t, m.Empty())
}

func TestValidate(t *testing.T) {
	job := []cronJob{{Schedule: "@daily", Command: "x"}}

	tests := []struct {
		name     string
		manifest Manifest
		wantKind string
	}{
		{
			name:     "block without file",
			manifest: Manifest{Blocks: []Block{{Name: "n"}}},
			wantKind: "block",
		},
		{
			name:     "block without name or markers",
			manifest: Manifest{Blocks: []Block{{File: "f"}}},
			wantKind: "block",
		},
		{
			name:     "block with half a marker pair",
			manifest: Manifest{Blocks: []Block{{File: "f", Start: "# BEGIN"}}},
			wantKind: "block",
		},
		{
			name:     "block with identical markers",
			manifest: Manifest{Blocks: []Block{{File: "f", Start: "# X", End: "# X"}}},
			wantKind: "block",
		},
		{
			name:     "duplicate block",
			manifest: Manifest{Blocks: []Block{{File: "f", Name: "n"}, {File: "f", Name: "n"}}},
			wantKind: "block",
		},
		{
			name:     "anchor without prefix",
			manifest: Manifest{Anchors: []Anchor{{File: "f"}}},
			wantKind: "anchor",
		},
		{
			name:     "anchor with unknown format",
			manifest: Manifest{Anchors: []Anchor{{File: "f", Prefix: "p=", Format: "json"}}},
			wantKind: "anchor",
		},
		{
			name:     "duplicate anchor",
			manifest: Manifest{Anchors: []Anchor{{File: "f", Prefix: "p="}, {File: "f", Prefix: "p="}}},
			wantKind: "anchor",
		},
		{
			name:     "cron without jobs",
			manifest: Manifest{Cron: []Cron{{Name: "n"}}},
			wantKind: "cron",
		},
		{
			name:     "cron with bad schedule",
			manifest: Manifest{Cron: []Cron{{Name: "n", Jobs: []cronJob{{Schedule: "bad", Command: "x"}}}}},
			wantKind: "cron",
		},
		{
			name:     "duplicate cron",
			manifest: Manifest{Cron: []Cron{{Name: "n", Jobs: job}, {Name: "n", Jobs: job}}},
			wantKind: "cron",
		},
		{
			name:     "launch agent without program",
			manifest: Manifest{LaunchAgents: []launchAgent{{Label: "com.example"}}},
			wantKind: "launch_agent",
		},
		{
			name:     "empty note",
			manifest: Manifest{Notes: []Note{{}}},
			wantKind: "note",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid), "got %v", err)
			assert.Equal(t, tt.wantKind, errors.GetErrorDetails(err)["kind"])
		})
	}
}
