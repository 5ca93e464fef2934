package middleware

import (
	"net/http"
	"strings"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/apierror"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"

	"github.com/gin-gonic/gin"
)

// TokenPassthrough requires a Bearer token on admin routes and stashes it in
// the request context so the upstream client forwards it verbatim. The token
// is never validated here: sessions are owned by the backend, which answers
// 401 on its own.
func TokenPassthrough() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		ctx := upstream.ConToken(c.Request.Context(), token)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
