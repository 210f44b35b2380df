package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseUintQuery 解析query参数为uint
func parseUintQuery(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Query(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
