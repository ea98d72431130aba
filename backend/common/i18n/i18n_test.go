package i18n

import (
	"errors"
	"testing"

	pkerrors "packlist/backend/common/errors"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.Equal(t, "checklist not found", Translate(pkerrors.ErrChecklistNotFound, "en"))
	assert.Equal(t, "清单不存在", Translate(pkerrors.ErrChecklistNotFound, "zh"))
}

func TestTranslate_FallbackToEnglish(t *testing.T) {
	assert.Equal(t, "checklist not found", Translate(pkerrors.ErrChecklistNotFound, "fr"))
}

func TestTranslate_UnknownCodeStaysDiagnosable(t *testing.T) {
	assert.Equal(t, "ERR_DOES_NOT_EXIST", Translate("ERR_DOES_NOT_EXIST", "en"))
}

func TestTranslate_WithArgs(t *testing.T) {
	assert.Equal(t, "invalid parameter: id", Translate(pkerrors.ErrInvalidParam, "en", "id"))
}

func TestIsErrorCode(t *testing.T) {
	err := New(pkerrors.ErrShareNotFound, "en")
	assert.True(t, IsErrorCode(err, pkerrors.ErrShareNotFound))
	assert.False(t, IsErrorCode(err, pkerrors.ErrChecklistNotFound))
	assert.False(t, IsErrorCode(errors.New("plain"), pkerrors.ErrShareNotFound))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("row missing")
	err := Wrap(cause, pkerrors.ErrItemNotFound, "en")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "item not found", err.Error())
}
