package handlers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
)

// logInternal records the underlying cause of a 500 server-side. Clients only
// ever see the generic message.
func logInternal(c *gin.Context, err error) {
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
