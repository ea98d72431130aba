package errors

// Generic error codes
const (
	ErrInternalServer = "ERR_INTERNAL_SERVER"
	ErrInvalidParam   = "ERR_INVALID_PARAM"
)

// Auth error codes
const (
	ErrEmptyCredentials   = "ERR_EMPTY_CREDENTIALS"
	ErrInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrUserDisabled       = "ERR_USER_DISABLED"
	ErrUsernameTaken      = "ERR_USERNAME_TAKEN"
	ErrUserNotFound       = "ERR_USER_NOT_FOUND"
	ErrEmptyID            = "ERR_EMPTY_ID"
)

// Checklist error codes. Not-found is deliberately the only negative answer
// for unresolvable or unowned targets; there is no distinct "forbidden".
const (
	ErrChecklistNotFound = "ERR_CHECKLIST_NOT_FOUND"
	ErrCategoryNotFound  = "ERR_CATEGORY_NOT_FOUND"
	ErrItemNotFound      = "ERR_ITEM_NOT_FOUND"
	ErrFileNotFound      = "ERR_FILE_NOT_FOUND"
	ErrShareNotFound     = "ERR_SHARE_NOT_FOUND"
	ErrCloneFailed       = "ERR_CLONE_FAILED"
	ErrUploadFailed      = "ERR_UPLOAD_FAILED"
)
