package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
)

const (
	MessageCreated = "Resource Successfully Created"
	MessageUpdated = "Resource Updated"
	MessageDeleted = "Resource Deleted"
)

// MessageBody is the shape of every non-entity response.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes a serialized entity or collection.
func JSON(c *gin.Context, status int, data interface{}) {
	noStore(c)
	c.JSON(status, data)
}

// Message writes {"message": text}.
func Message(c *gin.Context, status int, text string) {
	noStore(c)
	c.JSON(status, MessageBody{Message: text})
}

// Created reports a successful insert. The status stays 200 for existing
// clients; location points at the new resource.
func Created(c *gin.Context, location string) {
	if location != "" {
		c.Header("Location", location)
	}
	Message(c, http.StatusOK, MessageCreated)
}

// Error converts err to its public message and status and records the cause
// on the context for the access log.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	noStore(c)
	c.AbortWithStatusJSON(appErr.Status, MessageBody{Message: appErr.Message})
}

// Raw writes body verbatim with the JSON content type.
func Raw(c *gin.Context, status int, body string) {
	c.Data(status, "application/json", []byte(body))
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
