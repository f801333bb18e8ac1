package terminal

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/arthur-debert/dotsetup/pkg/bootstrap"
	"github.com/arthur-debert/dotsetup/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReport_Summary(t *testing.T) {
	tests := []struct {
		name   string
		report *bootstrap.Report
		want   string
	}{
		{
			name: "all in place",
			report: &bootstrap.Report{Mode: bootstrap.ModeApply, Results: []bootstrap.Result{
				{Kind: bootstrap.KindBlock, Name: "fzf", Path: "/h/.zshrc", Status: bootstrap.StatusUnchanged},
			}},
			want: "Everything is in place.",
		},
		{
			name: "pending changes",
			report: &bootstrap.Report{Mode: bootstrap.ModeApply, DryRun: true, Results: []bootstrap.Result{
				{Kind: bootstrap.KindBlock, Name: "fzf", Path: "/h/.zshrc", Status: bootstrap.StatusChanged},
			}},
			want: "Changes pending",
		},
		{
			name: "failures",
			report: &bootstrap.Report{Mode: bootstrap.ModeApply, Results: []bootstrap.Result{
				{Kind: bootstrap.KindCron, Name: "backup", Path: "crontab", Status: bootstrap.StatusFailed, Error: "boom"},
			}},
			want: "Some targets failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, New(&buf, false).RenderReport(tt.report))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestRenderNotes(t *testing.T) {
	out := RenderNotes([]manifest.Note{
		{Title: "iTerm2", Body: "Enable Natural Text Editing"},
	})

	assert.Contains(t, out, "Manual steps")
	assert.Contains(t, out, "iTerm2")
	assert.Contains(t, out, "Natural Text Editing")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).RenderError(fmt.Errorf("boom")))
	assert.Contains(t, buf.String(), "boom")
}
