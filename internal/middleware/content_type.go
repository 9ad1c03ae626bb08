package middleware

import "github.com/gin-gonic/gin"

// JSONContentType defaults every response under the group to application/json.
func JSONContentType() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.Next()
	}
}
