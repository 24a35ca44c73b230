package handler

import (
	"strconv"

	"CollabHub/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	svc *service.MessageService
}

type CreateMessageReq struct {
	Content string `json:"content"`
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// Create 在会话内发消息
func (h *MessageHandler) Create(c *gin.Context) {
	convID, valid := idParam(c, "id")
	if !valid {
		return
	}

	var req CreateMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid params")
		return
	}

	msg, err := h.svc.CreateMessage(c.Request.Context(), userIDFromCtx(c), convID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, "message sent", gin.H{"id": msg.ID, "created_at": msg.CreatedAt})
}

// Delete 仅作者本人可删
func (h *MessageHandler) Delete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}

	if err := h.svc.DeleteMessage(userIDFromCtx(c), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "message deleted", nil)
}

// List 分页读取会话消息，created_at 升序
func (h *MessageHandler) List(c *gin.Context) {
	convID, valid := idParam(c, "id")
	if !valid {
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.svc.ListMessages(userIDFromCtx(c), convID, page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "messages", result)
}
