package handler

import (
	"CollabHub/internal/service"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	svc *service.EmailService
}

type SendCodeReq struct {
	Email string `json:"email" binding:"required,email"`
}

func NewEmailHandler(svc *service.EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

// SendResetCode 发送重置密码验证码
func (h *EmailHandler) SendResetCode(c *gin.Context) {
	var req SendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid params")
		return
	}

	if err := h.svc.SendResetCode(req.Email); err != nil {
		fail(c, err)
		return
	}

	ok(c, "code sent", nil)
}
