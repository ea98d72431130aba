package model

import (
	"errors"

	"packlist/backend/common"
	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"

	"gorm.io/gorm"
)

const (
	RoleCommonUser = 1
	RoleAdminUser  = 10
	RoleRootUser   = 100
)

// User represents a local account. The stable identity every ownership check
// compares against is the row id carried in validated JWT claims.
// Password is a bcrypt hash and never serialized.
type User struct {
	Id          int64  `json:"id" gorm:"primaryKey"`
	Username    string `json:"username" gorm:"uniqueIndex;size:32;not null"`
	Password    string `json:"-" gorm:"size:100;not null"`
	DisplayName string `json:"display_name" gorm:"size:50"`
	Email       string `json:"email" gorm:"index;size:100"`
	Role        int    `json:"role" gorm:"type:int;default:1"`
	Status      int    `json:"status" gorm:"type:int;default:1"`
	CreatedAt   int64  `json:"created_at" gorm:"autoCreateTime"`
}

func GetUserById(id int64, lang string) (*User, error) {
	if id == 0 {
		return nil, i18n.New(pkerrors.ErrEmptyID, lang)
	}
	var user User
	if err := DB.First(&user, id).Error; err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrUserNotFound, lang)
	}
	return &user, nil
}

func GetUserByUsername(username string, lang string) (*User, error) {
	var user User
	if err := DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrUserNotFound, lang)
	}
	return &user, nil
}

func IsUsernameTaken(username string) bool {
	var count int64
	DB.Model(&User{}).Where("username = ?", username).Count(&count)
	return count > 0
}

func (user *User) Insert() error {
	if user.Password != "" {
		hashedPassword, err := common.Password2Hash(user.Password)
		if err != nil {
			return err
		}
		user.Password = hashedPassword
	}
	if user.Role == 0 {
		user.Role = RoleCommonUser
	}
	return DB.Create(user).Error
}

func (user *User) Update(updatePassword bool) error {
	if updatePassword {
		hashedPassword, err := common.Password2Hash(user.Password)
		if err != nil {
			return err
		}
		user.Password = hashedPassword
	}
	fields := []string{"display_name", "email", "status"}
	if updatePassword {
		fields = append(fields, "password")
	}
	return DB.Model(user).Select(fields).Updates(user).Error
}

// DeleteUserById removes the account row only. Cleaning up the checklists the
// account owns (including their upload blobs) is the service layer's job.
func DeleteUserById(id int64, lang string) error {
	if id == 0 {
		return i18n.New(pkerrors.ErrEmptyID, lang)
	}
	var user User
	if err := DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return i18n.Wrap(err, pkerrors.ErrUserNotFound, lang)
		}
		return err
	}
	return DB.Delete(&user).Error
}

// ValidateUserCredentials checks username/password and account status for login.
func ValidateUserCredentials(username string, password string, lang string) (*User, error) {
	if username == "" || password == "" {
		return nil, i18n.New(pkerrors.ErrEmptyCredentials, lang)
	}
	user, err := GetUserByUsername(username, lang)
	if err != nil {
		return nil, i18n.New(pkerrors.ErrInvalidCredentials, lang)
	}
	if !common.ValidatePasswordAndHash(password, user.Password) {
		return nil, i18n.New(pkerrors.ErrInvalidCredentials, lang)
	}
	if user.Status != common.UserStatusEnabled {
		return nil, i18n.New(pkerrors.ErrUserDisabled, lang)
	}
	return user, nil
}
