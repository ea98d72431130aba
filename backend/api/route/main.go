package route

import (
	"github.com/gin-gonic/gin"
)

func SetRouter(route *gin.Engine) {
	SetApiRouter(route)
	setWebRouter(route)
}
