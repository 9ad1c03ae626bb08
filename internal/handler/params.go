package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
)

var errInvalidID = errors.New("id must be a positive integer")

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// deleteFailure keeps the historical contract: a delete that cannot find its
// target answers 500, not 404.
func deleteFailure(err error) error {
	if errors.Is(err, appErrors.ErrNotFound) || errors.Is(err, errInvalidID) {
		return appErrors.Server(err)
	}
	return err
}

func invalidPayload(err error) error {
	return appErrors.Inoperable(fmt.Errorf("decode payload: %w", err))
}

func resourceLocation(c *gin.Context, id int64) string {
	return fmt.Sprintf("%s/%d", strings.TrimRight(c.Request.URL.Path, "/"), id)
}
