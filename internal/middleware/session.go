package middleware

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/ecollege-api/pkg/database"
	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
	"github.com/noah-isme/ecollege-api/pkg/response"
)

// Connector hands out dedicated connections; *sqlx.DB satisfies it.
type Connector interface {
	Connx(ctx context.Context) (*sqlx.Conn, error)
}

// Session pins one store connection to each request and releases it once the
// handler chain returns.
func Session(db Connector) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := db.Connx(c.Request.Context())
		if err != nil {
			response.Error(c, appErrors.Server(fmt.Errorf("acquire session: %w", err)))
			return
		}
		defer conn.Close()

		c.Request = c.Request.WithContext(database.WithSession(c.Request.Context(), conn))
		c.Next()
	}
}
