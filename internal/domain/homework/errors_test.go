package homework_test

import (
	"errors"
	"fmt"
	"testing"

	"homework_status_bot/internal/domain/homework"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByKind(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("poll: %w", homework.Wrap(homework.KindTransport, "request failed", cause))

	assert.ErrorIs(t, err, homework.ErrTransport)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, homework.ErrDecode)
	assert.Equal(t, homework.KindTransport, homework.KindOf(err))
	assert.Equal(t, "poll: request failed: connection refused", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	assert.NoError(t, homework.Wrap(homework.KindDecode, "decode", nil))
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, homework.KindUnknown, homework.KindOf(errors.New("boom")))
	assert.Equal(t, homework.KindUnknown, homework.KindOf(nil))
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "empty_result", homework.ErrEmptyResult.Error())
	assert.Equal(t, "boom", (&homework.Error{Kind: homework.KindDecode, Err: errors.New("boom")}).Error())
}
