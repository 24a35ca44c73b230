package handler

import (
	"CollabHub/internal/service"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	svc *service.ConversationService
}

type CreateConversationReq struct {
	ParticipantIDs []uint64 `json:"participant_ids"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
}

func NewConversationHandler(svc *service.ConversationService) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

// Create 创建会话，创建者隐式入会
func (h *ConversationHandler) Create(c *gin.Context) {
	var req CreateConversationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid params")
		return
	}

	conv, err := h.svc.CreateConversation(c.Request.Context(), userIDFromCtx(c),
		req.ParticipantIDs, req.Title, req.Description)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, "conversation created", gin.H{
		"id":              conv.ID,
		"title":           conv.Title,
		"created_at":      conv.CreatedAt,
		"last_message_at": conv.LastMessageAt,
	})
}

// Delete 删除会话及其消息
func (h *ConversationHandler) Delete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}

	if err := h.svc.DeleteConversation(c.Request.Context(), userIDFromCtx(c), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "conversation deleted", nil)
}

// List 自己参与的会话，按最近活跃排序
func (h *ConversationHandler) List(c *gin.Context) {
	list, err := h.svc.ListConversations(userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]gin.H, 0, len(list))
	for _, p := range list {
		item := gin.H{
			"id":                p.Conversation.ID,
			"title":             p.Conversation.Title,
			"participant_count": p.ParticipantCount,
			"last_message_at":   p.Conversation.LastMessageAt,
		}
		if p.LastMessage != nil {
			item["last_message"] = gin.H{
				"content":    p.LastMessage.Content,
				"author_id":  p.LastMessage.AuthorID,
				"created_at": p.LastMessage.CreatedAt,
			}
		}
		items = append(items, item)
	}
	ok(c, "conversations", gin.H{"list": items})
}
