package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
	"github.com/noah-isme/ecollege-api/pkg/response"
)

// Recovery turns a panic into the standard 500 message body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		response.Error(c, appErrors.Server(fmt.Errorf("panic: %v", recovered)))
	})
}
