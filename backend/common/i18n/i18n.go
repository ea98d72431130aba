package i18n

import (
	"fmt"

	pkerrors "packlist/backend/common/errors"
)

// translations maps language -> error code (or message key) -> template.
var translations = map[string]map[string]string{
	"en": {
		pkerrors.ErrInternalServer:     "internal server error",
		pkerrors.ErrInvalidParam:       "invalid parameter: %s",
		pkerrors.ErrEmptyCredentials:   "username and password are required",
		pkerrors.ErrInvalidCredentials: "invalid username or password",
		pkerrors.ErrUserDisabled:       "this account has been disabled",
		pkerrors.ErrUsernameTaken:      "username is already taken",
		pkerrors.ErrUserNotFound:       "user not found",
		pkerrors.ErrEmptyID:            "id must not be empty",
		pkerrors.ErrChecklistNotFound:  "checklist not found",
		pkerrors.ErrCategoryNotFound:   "category not found",
		pkerrors.ErrItemNotFound:       "item not found",
		pkerrors.ErrFileNotFound:       "file not found",
		pkerrors.ErrShareNotFound:      "share link not found",
		pkerrors.ErrCloneFailed:        "failed to clone checklist",
		pkerrors.ErrUploadFailed:       "failed to upload file",
	},
	"zh": {
		pkerrors.ErrInternalServer:     "服务器内部错误",
		pkerrors.ErrInvalidParam:       "无效的参数: %s",
		pkerrors.ErrEmptyCredentials:   "用户名和密码不能为空",
		pkerrors.ErrInvalidCredentials: "用户名或密码错误",
		pkerrors.ErrUserDisabled:       "该账户已被禁用",
		pkerrors.ErrUsernameTaken:      "用户名已被占用",
		pkerrors.ErrUserNotFound:       "用户不存在",
		pkerrors.ErrEmptyID:            "id 不能为空",
		pkerrors.ErrChecklistNotFound:  "清单不存在",
		pkerrors.ErrCategoryNotFound:   "分类不存在",
		pkerrors.ErrItemNotFound:       "条目不存在",
		pkerrors.ErrFileNotFound:       "文件不存在",
		pkerrors.ErrShareNotFound:      "分享链接不存在",
		pkerrors.ErrCloneFailed:        "克隆清单失败",
		pkerrors.ErrUploadFailed:       "文件上传失败",
	},
}

// Translate renders code in lang, falling back to English, then to the raw
// code itself so unknown codes stay diagnosable.
func Translate(code string, lang string, args ...interface{}) string {
	table, ok := translations[lang]
	if !ok {
		table = translations["en"]
	}
	msg, ok := table[code]
	if !ok {
		msg, ok = translations["en"][code]
		if !ok {
			msg = code
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
