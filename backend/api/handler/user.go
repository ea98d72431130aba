package handler

import (
	"net/http"

	"packlist/backend/common"
	"packlist/backend/model"
	"packlist/backend/service"

	"github.com/gin-gonic/gin"
)

type SelfUpdateRequestPayload struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    string  `json:"password" validate:"omitempty,min=6,max=64"`
}

func selfId(c *gin.Context) (int64, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok && id != 0
}

func GetSelf(c *gin.Context) {
	lang := c.GetString("lang")
	id, ok := selfId(c)
	if !ok {
		common.RespErrorStr(c, http.StatusUnauthorized, "user_id not found in context")
		return
	}
	user, err := model.GetUserById(id, lang)
	if err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, user)
}

func UpdateSelf(c *gin.Context) {
	lang := c.GetString("lang")
	id, ok := selfId(c)
	if !ok {
		common.RespErrorStr(c, http.StatusUnauthorized, "user_id not found in context")
		return
	}
	var payload SelfUpdateRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respInvalidParam(c, "body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := model.GetUserById(id, lang)
	if err != nil {
		respServiceError(c, err)
		return
	}
	if payload.DisplayName != nil {
		user.DisplayName = *payload.DisplayName
	}
	if payload.Email != nil {
		user.Email = *payload.Email
	}
	updatePassword := payload.Password != ""
	if updatePassword {
		user.Password = payload.Password
	}
	if err := user.Update(updatePassword); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, user)
}

func DeleteSelf(c *gin.Context) {
	lang := c.GetString("lang")
	id, ok := selfId(c)
	if !ok {
		common.RespErrorStr(c, http.StatusUnauthorized, "user_id not found in context")
		return
	}
	if err := service.DeleteUserAccount(id, lang); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccessStr(c, "account deleted")
}
