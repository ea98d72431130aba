package middleware

import (
	"net/http"
	"strings"

	"packlist/backend/common"
	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"
	"packlist/backend/model"
	"packlist/backend/service"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// JWTAuth validates the bearer token and puts the resolved principal into the
// context. Requests without a valid credential are rejected.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			common.RespErrorStr(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		claims, err := service.ValidateToken(tokenString)
		if err != nil {
			common.RespErrorStr(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		if service.IsTokenBlacklisted(c, tokenString) {
			common.RespErrorStr(c, http.StatusUnauthorized, "token has been invalidated")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("principal", service.OwnerPrincipal(claims.UserID))
		c.Next()
	}
}

// OptionalJWTAuth resolves an identity when a valid bearer token is present
// and stays silent otherwise. Listing endpoints use it for the soft deny:
// no identity means an empty result set, not an auth error.
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if ok {
			claims, err := service.ValidateToken(tokenString)
			if err == nil && !service.IsTokenBlacklisted(c, tokenString) {
				c.Set("user_id", claims.UserID)
				c.Set("username", claims.Username)
				c.Set("principal", service.OwnerPrincipal(claims.UserID))
			}
		}
		c.Next()
	}
}

// RootAuth admits only enabled root-role accounts. It runs after JWTAuth has
// resolved user_id, so a failed lookup here means the account vanished since
// the token was issued.
func RootAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetString("lang")
		user, err := model.GetUserById(c.GetInt64("user_id"), lang)
		if err != nil || user.Status != common.UserStatusEnabled || user.Role < model.RoleRootUser {
			common.RespErrorStr(c, http.StatusForbidden, "insufficient privileges")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ShareTokenAuth resolves the :token path parameter to a checklist and puts a
// token-holder principal into the context. Unknown tokens answer not-found,
// never an auth error, so share URLs do not leak which tokens exist.
func ShareTokenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetString("lang")
		token := c.Param("token")
		if token == "" {
			common.RespErrorStr(c, http.StatusNotFound, i18n.Translate(pkerrors.ErrShareNotFound, lang))
			c.Abort()
			return
		}

		checklistID, err := service.ResolveShareToken(token, lang)
		if err != nil {
			common.RespErrorStr(c, http.StatusNotFound, err.Error())
			c.Abort()
			return
		}

		c.Set("share_checklist_id", checklistID)
		c.Set("principal", service.TokenPrincipal(checklistID))
		c.Next()
	}
}
