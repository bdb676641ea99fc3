package flash

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CookieName = "fyyur_session"
	contextKey = "sessionID"
)

// SessionMiddleware выдаёт cookie с идентификатором сессии, если её ещё нет,
// и кладёт идентификатор в контекст gin.
func SessionMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, id, 0, "/", "", secure, true)
		}
		c.Set(contextKey, id)
		c.Next()
	}
}

// SessionID идентификатор сессии текущего запроса или пустая строка.
func SessionID(c *gin.Context) string {
	return c.GetString(contextKey)
}
