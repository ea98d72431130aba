package handler

import (
	"net/http"
	"net/url"

	"packlist/backend/common"
	"packlist/backend/model"

	"github.com/gin-gonic/gin"
)

type OptionRequestPayload struct {
	Key   string `json:"key" validate:"required,max=64"`
	Value string `json:"value" validate:"max=1024"`
}

// GetOptions lists every runtime option. Root only.
func GetOptions(c *gin.Context) {
	options, err := model.AllOptions()
	if err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, options)
}

// UpdateOption changes one runtime option, e.g. the ServerAddress share URLs
// are built from. Root only.
func UpdateOption(c *gin.Context) {
	var payload OptionRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respInvalidParam(c, "body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Key == "ServerAddress" {
		parsed, err := url.Parse(payload.Value)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			common.RespErrorStr(c, http.StatusBadRequest, "ServerAddress must be an absolute URL")
			return
		}
	}

	if err := model.UpdateOption(payload.Key, payload.Value); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccessStr(c, "option updated")
}
