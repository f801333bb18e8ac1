package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	cause := stderrors.New("exit status 1")

	tests := []struct {
		name string
		err  *errors.SetupError
		want string
	}{
		{
			name: "engine error",
			err:  errors.New(errors.ErrMalformedRegion, "start marker has no matching end marker"),
			want: "[MALFORMED_REGION] start marker has no matching end marker",
		},
		{
			name: "formatted",
			err:  errors.Newf(errors.ErrUnparsableAnchor, "cannot parse %q", "plugins=(git"),
			want: `[UNPARSABLE_ANCHOR] cannot parse "plugins=(git"`,
		},
		{
			name: "wrapped cause",
			err:  errors.Wrap(cause, errors.ErrCrontabWrite, "failed to install crontab"),
			want: "[CRONTAB_WRITE] failed to install crontab: exit status 1",
		},
		{
			name: "wrapped formatted",
			err:  errors.Wrapf(cause, errors.ErrFileWrite, "failed to write %s", "/h/.zshrc"),
			want: "[FILE_WRITE] failed to write /h/.zshrc: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.NotNil(t, tt.err.Details)
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "x"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "x %d", 1))
}

func TestUnwrapAndIs(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := errors.Wrap(cause, errors.ErrCrontabUnavailable, "failed to read crontab")

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, errors.New(errors.ErrCrontabUnavailable, "any message"))
	assert.NotErrorIs(t, err, errors.New(errors.ErrCrontabWrite, "failed to read crontab"))

	outer := fmt.Errorf("target ssh backup: %w", err)
	var setupErr *errors.SetupError
	require.True(t, stderrors.As(outer, &setupErr))
	assert.Equal(t, errors.ErrCrontabUnavailable, setupErr.Code)
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrAmbiguousMarker, "end marker appears before start marker").
		WithDetail("line", 3).
		WithDetails(map[string]interface{}{"path": "/h/.zshrc", "marker": "# END"})

	assert.Equal(t, map[string]interface{}{
		"line":   3,
		"path":   "/h/.zshrc",
		"marker": "# END",
	}, errors.GetErrorDetails(err))

	var bare errors.SetupError
	bare.WithDetail("line", 1)
	assert.Equal(t, 1, bare.Details["line"])
}

func TestCodeHelpers(t *testing.T) {
	plain := stderrors.New("boom")
	coded := fmt.Errorf("wrapped: %w", errors.New(errors.ErrManifestInvalid, "block needs a file"))

	tests := []struct {
		name        string
		err         error
		wantCode    errors.ErrorCode
		wantDetails bool
	}{
		{name: "coded", err: coded, wantCode: errors.ErrManifestInvalid, wantDetails: true},
		{name: "plain", err: plain, wantCode: errors.ErrUnknown},
		{name: "nil", err: nil, wantCode: errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(tt.err))
			assert.Equal(t, tt.wantCode != errors.ErrUnknown, errors.IsErrorCode(tt.err, tt.wantCode))
			assert.Equal(t, tt.wantDetails, errors.GetErrorDetails(tt.err) != nil)
		})
	}
}
