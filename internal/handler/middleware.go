package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tribuna/internal/model"
	"tribuna/internal/session"
)

const (
	userContextKey  = "tribuna.user"
	tokenContextKey = "tribuna.token"
)

// Sessions resolves the bearer token to a logged-in user. Requests without
// a token, or with an unknown one, proceed as anonymous: the author gate
// sits on the operations themselves, not here.
func Sessions(registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if ok && token != "" {
			if user, found := registry.Resolve(token); found {
				c.Set(userContextKey, user)
				c.Set(tokenContextKey, token)
			}
		}
		c.Next()
	}
}

func sessionUser(c *gin.Context) *model.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user := value.(model.User)
	return &user
}

func sessionToken(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}
