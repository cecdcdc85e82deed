package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PedroPossari/Vitalis/internal/middleware"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func currentUserID(c *gin.Context) *uint {
	if v, exists := c.Get(middleware.ContextUserID); exists {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
