package rustdocs_test

import (
	"errors"
	"testing"

	"github.com/gitduk/rustdocs"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := rustdocs.Errorf(rustdocs.ENOTFOUND, "crate %q not found", "tokio")

	assert.Equal(t, rustdocs.ENOTFOUND, rustdocs.ErrorCode(err))
	assert.Equal(t, "crate \"tokio\" not found", rustdocs.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rustdocs.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rustdocs.EINTERNAL, rustdocs.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rustdocs.ErrorMessage(nil))
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	err := &rustdocs.StatusError{StatusCode: 404, Snippet: "not found"}

	assert.Equal(t, `status error 404, response: "not found"`, err.Error())
}
