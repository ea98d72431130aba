package handler

import (
	"net/http"
	"strconv"

	"packlist/backend/common"
	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"
	"packlist/backend/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func paramId(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

func principalFromContext(c *gin.Context) service.Principal {
	value, exists := c.Get("principal")
	if !exists {
		return service.Principal{}
	}
	principal, ok := value.(service.Principal)
	if !ok {
		return service.Principal{}
	}
	return principal
}

// statusForError maps error codes to HTTP statuses. Unresolvable targets are
// always 404, regardless of whether they exist for somebody else.
func statusForError(err error) int {
	switch {
	case i18n.IsErrorCode(err, pkerrors.ErrChecklistNotFound),
		i18n.IsErrorCode(err, pkerrors.ErrCategoryNotFound),
		i18n.IsErrorCode(err, pkerrors.ErrItemNotFound),
		i18n.IsErrorCode(err, pkerrors.ErrFileNotFound),
		i18n.IsErrorCode(err, pkerrors.ErrShareNotFound),
		i18n.IsErrorCode(err, pkerrors.ErrUserNotFound):
		return http.StatusNotFound
	case i18n.IsErrorCode(err, pkerrors.ErrInvalidParam),
		i18n.IsErrorCode(err, pkerrors.ErrEmptyID),
		i18n.IsErrorCode(err, pkerrors.ErrUsernameTaken):
		return http.StatusBadRequest
	case i18n.IsErrorCode(err, pkerrors.ErrEmptyCredentials),
		i18n.IsErrorCode(err, pkerrors.ErrInvalidCredentials),
		i18n.IsErrorCode(err, pkerrors.ErrUserDisabled):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respServiceError(c *gin.Context, err error) {
	common.RespErrorStr(c, statusForError(err), err.Error())
}

// notFound is the uniform answer when the principal's capabilities do not
// admit the attempted operation; targets never look forbidden, only absent.
func notFound(c *gin.Context) error {
	return i18n.New(pkerrors.ErrChecklistNotFound, c.GetString("lang"))
}

func respInvalidParam(c *gin.Context, param string) {
	lang := c.GetString("lang")
	common.RespErrorStr(c, http.StatusBadRequest, i18n.InvalidParamError(lang, param).Error())
}
