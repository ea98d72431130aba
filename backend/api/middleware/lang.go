package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Language picks the reply language from the Accept-Language header.
// Only en and zh are translated; everything else falls back to en.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := "en"
		accept := c.GetHeader("Accept-Language")
		if strings.HasPrefix(strings.ToLower(accept), "zh") {
			lang = "zh"
		}
		c.Set("lang", lang)
		c.Next()
	}
}
