package handler

import (
	"packlist/backend/common"
	"packlist/backend/model"

	"github.com/gin-gonic/gin"
)

func GetStatus(c *gin.Context) {
	common.RespSuccess(c, gin.H{
		"system_name":    common.SystemName,
		"version":        common.Version,
		"start_time":     common.StartTime,
		"server_address": model.GetOption("ServerAddress"),
	})
}
