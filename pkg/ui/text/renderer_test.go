package text

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/dotsetup/pkg/bootstrap"
	"github.com/arthur-debert/dotsetup/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(mode bootstrap.Mode, dryRun bool) *bootstrap.Report {
	return &bootstrap.Report{
		Mode:   mode,
		DryRun: dryRun,
		Results: []bootstrap.Result{
			{
				Kind:     bootstrap.KindBlock,
				Name:     "fzf",
				Path:     "/h/.zshrc",
				Status:   bootstrap.StatusChanged,
				Diff:     "--- a/.zshrc\n+++ b/.zshrc\n+source <(fzf --zsh)",
				Warnings: []string{"additional managed region left untouched"},
			},
			{Kind: bootstrap.KindAnchor, Name: "plugins=", Path: "/h/.zshrc", Status: bootstrap.StatusUnchanged},
			{Kind: bootstrap.KindCron, Name: "backup", Path: "crontab", Status: bootstrap.StatusFailed, Error: "crontab unavailable"},
		},
	}
}

func TestRenderReport(t *testing.T) {
	tests := []struct {
		name     string
		mode     bootstrap.Mode
		dryRun   bool
		showDiff bool
		contains []string
		excludes []string
	}{
		{
			name: "apply",
			mode: bootstrap.ModeApply,
			contains: []string{
				"fzf : updated in /h/.zshrc",
				"plugins= : up to date in /h/.zshrc",
				"backup : failed in crontab",
				"! additional managed region left untouched",
				"✗ crontab unavailable",
				"1 changed, 1 unchanged, 1 failed",
			},
			excludes: []string{"Dry run", "+source"},
		},
		{
			name:     "dry run with diff",
			mode:     bootstrap.ModeApply,
			dryRun:   true,
			showDiff: true,
			contains: []string{
				"Dry run: nothing was written.",
				"fzf : will be updated in /h/.zshrc",
				"+source <(fzf --zsh)",
			},
		},
		{
			name:     "clean",
			mode:     bootstrap.ModeClean,
			contains: []string{"fzf : removed from /h/.zshrc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, New(&buf, tt.showDiff).RenderReport(sampleReport(tt.mode, tt.dryRun)))

			out := buf.String()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
			assert.NotContains(t, out, "\x1b[", "plain text must not carry escape codes")
		})
	}
}

func TestRenderReport_LineOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).RenderReport(sampleReport(bootstrap.ModeApply, false)))

	out := buf.String()
	fzf := strings.Index(out, "fzf")
	plugins := strings.Index(out, "plugins=")
	backup := strings.Index(out, "backup")
	assert.True(t, fzf < plugins && plugins < backup, "targets must render in report order")
}

func TestRenderReport_Notes(t *testing.T) {
	report := sampleReport(bootstrap.ModeApply, false)
	report.Notes = []manifest.Note{
		{Title: "iTerm2", Body: "Enable Natural Text Editing"},
		{Title: "Log out and back in"},
		{Body: "Grant Full Disk Access to the terminal"},
	}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).RenderReport(report))

	out := buf.String()
	assert.Contains(t, out, "Manual steps:")
	assert.Contains(t, out, "  - iTerm2: Enable Natural Text Editing\n")
	assert.Contains(t, out, "  - Log out and back in\n")
	assert.Contains(t, out, "  - Grant Full Disk Access to the terminal\n")
}

func TestRenderErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	require.NoError(t, r.RenderError(fmt.Errorf("boom")))
	require.NoError(t, r.RenderMessage("done"))

	assert.Equal(t, "Error: boom\ndone\n", buf.String())
}
