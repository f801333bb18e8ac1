package crontab

import (
	"testing"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		wantErr bool
	}{
		{name: "five fields", entry: Entry{Schedule: "0 2 * * 0", Command: "backup.sh"}},
		{name: "descriptor", entry: Entry{Schedule: "@daily", Command: "backup.sh"}},
		{name: "bad minute", entry: Entry{Schedule: "61 2 * * 0", Command: "backup.sh"}, wantErr: true},
		{name: "six fields", entry: Entry{Schedule: "0 0 2 * * 0", Command: "backup.sh"}, wantErr: true},
		{name: "empty command", entry: Entry{Schedule: "@daily"}, wantErr: true},
		{name: "multi-line command", entry: Entry{Schedule: "@daily", Command: "a\nb"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRender(t *testing.T) {
	body, err := Render([]Entry{
		{Schedule: "0 2 * * 0", Command: "~/.local/bin/ssh_backup.sh", Description: "Weekly SSH backup"},
		{Schedule: "@hourly", Command: "sync.sh"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"# Weekly SSH backup",
		"0 2 * * 0 ~/.local/bin/ssh_backup.sh",
		"@hourly sync.sh",
	}, body)

	_, err = Render([]Entry{{Schedule: "bogus", Command: "x"}})
	assert.Error(t, err)
}
