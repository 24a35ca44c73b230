package handler

import (
	"net/http"
	"strconv"

	"CollabHub/internal/pkg"

	"github.com/gin-gonic/gin"
)

// Envelope 统一响应体
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Status: true, Message: message, Data: data})
}

// fail 业务错误按分类映射状态码，原始内部错误不外泄
func fail(c *gin.Context, err error) {
	e := pkg.AsError(err)
	c.JSON(e.HTTPStatus(), Envelope{Status: false, Message: e.Message, Code: e.Code})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Status: false, Message: message, Code: "VALIDATION_FAILED"})
}

func userIDFromCtx(c *gin.Context) uint64 {
	if v, ok := c.Get("user_id"); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}

func roleFromCtx(c *gin.Context) int {
	if v, ok := c.Get("user_role"); ok {
		if r, ok2 := v.(int); ok2 {
			return r
		}
	}
	return 0
}

func idParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
