package handler

import (
	"net/http"
	"strings"

	"packlist/backend/common"
	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"
	"packlist/backend/model"
	"packlist/backend/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type RegisterRequestPayload struct {
	Username    string `json:"username" validate:"required,min=3,max=32"`
	Password    string `json:"password" validate:"required,min=6,max=64"`
	DisplayName string `json:"display_name" validate:"omitempty,max=50"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type LoginRequestPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequestPayload struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func Register(c *gin.Context) {
	lang := c.GetString("lang")
	var payload RegisterRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respInvalidParam(c, "body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}
	if model.IsUsernameTaken(payload.Username) {
		common.RespErrorStr(c, http.StatusBadRequest, i18n.Translate(pkerrors.ErrUsernameTaken, lang))
		return
	}

	user := model.User{
		Username:    payload.Username,
		Password:    payload.Password,
		DisplayName: payload.DisplayName,
		Email:       payload.Email,
		Status:      common.UserStatusEnabled,
	}
	if user.DisplayName == "" {
		user.DisplayName = payload.Username
	}
	if err := user.Insert(); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, user)
}

func Login(c *gin.Context) {
	lang := c.GetString("lang")
	var payload LoginRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respInvalidParam(c, "body")
		return
	}

	user, err := model.ValidateUserCredentials(payload.Username, payload.Password, lang)
	if err != nil {
		respServiceError(c, err)
		return
	}

	accessToken, err := service.GenerateToken(user.Id, user.Username)
	if err != nil {
		respServiceError(c, err)
		return
	}
	refreshToken, err := service.GenerateRefreshToken(user.Id, user.Username)
	if err != nil {
		respServiceError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.Id)
	session.Set("username", user.Username)
	session.Set("role", user.Role)
	session.Set("status", user.Status)
	if err := session.Save(); err != nil {
		common.RespErrorStr(c, http.StatusInternalServerError, "failed to save session: "+err.Error())
		return
	}

	common.RespSuccess(c, gin.H{
		"user":          user,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func RefreshToken(c *gin.Context) {
	var payload RefreshRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respInvalidParam(c, "refresh_token")
		return
	}

	claims, err := service.ValidateRefreshToken(payload.RefreshToken)
	if err != nil {
		common.RespErrorStr(c, http.StatusUnauthorized, err.Error())
		return
	}

	accessToken, err := service.GenerateToken(claims.UserID, claims.Username)
	if err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, gin.H{"access_token": accessToken})
}

func Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		if err := service.BlacklistToken(c, parts[1]); err != nil {
			common.SysError("failed to blacklist token: " + err.Error())
		}
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		common.RespErrorStr(c, http.StatusInternalServerError, "failed to clear session: "+err.Error())
		return
	}
	common.RespSuccessStr(c, "logged out")
}
