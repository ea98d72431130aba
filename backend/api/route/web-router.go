package route

import (
	"packlist/backend/common"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// setWebRouter serves uploaded blobs. Links are opaque random names, so the
// directory listing stays disabled.
func setWebRouter(route *gin.Engine) {
	route.Use(static.Serve("/upload", static.LocalFile(common.UploadPath, false)))
}
