package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam reads a non-negative integer path parameter. Anything else,
// including signs and values beyond the int64 range of the id columns,
// is rejected.
func ParseIDParam(c *gin.Context, name string) (uint64, bool) {
	raw := c.Param(name)
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, false
	}
	return id, true
}
