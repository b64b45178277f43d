// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, code lookup and exit status mapping

package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/datename/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "usage_error",
			code:    errors.ErrUsage,
			message: "unknown flag: --bogus",
			wantStr: "[USAGE] unknown flag: --bogus",
		},
		{
			name:    "dir_read_error",
			code:    errors.ErrDirRead,
			message: "cannot scan directory",
			wantStr: "[DIR_READ] cannot scan directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrRename, "cannot rename %s to %s", "a.jpg", "b.jpg")
	assert.Equal(t, "cannot rename a.jpg to b.jpg", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrDirCreate, "cannot create destination")

		assert.Equal(t, errors.ErrDirCreate, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[DIR_CREATE] cannot create destination: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(fs.ErrPermission, errors.ErrRename, "renaming %s", "x")
		assert.Equal(t, "renaming x", err.Message)
		assert.True(t, stderrors.Is(err, fs.ErrPermission))
	})
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrRename, "first"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrRename, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrDirRead, "first")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileAccess, "stat failed").
		WithDetail("path", "/photos/a.jpg").
		WithDetail("op", "lstat")

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/photos/a.jpg", details["path"])
	assert.Equal(t, "lstat", details["op"])

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorCodeHelpers(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", errors.New(errors.ErrDirRead, "boom"))

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrDirRead))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrRename))
	assert.Equal(t, errors.ErrDirRead, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil_is_success", nil, 0},
		{"usage_is_two", errors.New(errors.ErrUsage, "bad flag"), 2},
		{"config_parse_is_two", errors.New(errors.ErrConfigParse, "bad level"), 2},
		{"rename_is_one", errors.New(errors.ErrRename, "failed"), 1},
		{"plain_error_is_one", stderrors.New("plain"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.ExitCode(tt.err))
		})
	}
}
