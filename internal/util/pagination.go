package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page 1-based page addressing
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}

// ParsePage reads ?page=; absent, malformed or non-positive values mean page 1.
func ParsePage(c *gin.Context, size int) Page {
	n, err := strconv.Atoi(c.Query("page"))
	if err != nil || n < 1 {
		n = 1
	}
	return Page{Number: n, Size: size}
}

// ParseID parses a positive integer path parameter.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
