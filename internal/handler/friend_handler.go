package handler

import (
	"CollabHub/internal/service"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	svc *service.FriendService
}

func NewFriendHandler(svc *service.FriendService) *FriendHandler {
	return &FriendHandler{svc: svc}
}

// SendInvitation 向目标用户发好友邀请
func (h *FriendHandler) SendInvitation(c *gin.Context) {
	toID, valid := idParam(c, "id")
	if !valid {
		return
	}

	if err := h.svc.SendInvitation(userIDFromCtx(c), toID); err != nil {
		fail(c, err)
		return
	}
	ok(c, "invitation sent", nil)
}

// AcceptInvitation 接受来自 :id 的邀请
func (h *FriendHandler) AcceptInvitation(c *gin.Context) {
	fromID, valid := idParam(c, "id")
	if !valid {
		return
	}

	if err := h.svc.AcceptInvitation(userIDFromCtx(c), fromID); err != nil {
		fail(c, err)
		return
	}
	ok(c, "invitation accepted", nil)
}

// RejectInvitation 拒绝来自 :id 的邀请
func (h *FriendHandler) RejectInvitation(c *gin.Context) {
	fromID, valid := idParam(c, "id")
	if !valid {
		return
	}

	if err := h.svc.RejectInvitation(userIDFromCtx(c), fromID); err != nil {
		fail(c, err)
		return
	}
	ok(c, "invitation rejected", nil)
}

// RemoveFriend 幂等解除好友关系
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	friendID, valid := idParam(c, "id")
	if !valid {
		return
	}

	if err := h.svc.RemoveFriend(userIDFromCtx(c), friendID); err != nil {
		fail(c, err)
		return
	}
	ok(c, "friend removed", nil)
}

func (h *FriendHandler) ListFriends(c *gin.Context) {
	list, err := h.svc.ListFriends(userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]gin.H, 0, len(list))
	for _, u := range list {
		items = append(items, gin.H{
			"id":         u.ID,
			"email":      u.Email,
			"first_name": u.FirstName,
			"last_name":  u.LastName,
		})
	}
	ok(c, "friends", gin.H{"list": items})
}

func (h *FriendHandler) ListSentInvitations(c *gin.Context) {
	list, err := h.svc.ListSentInvitations(userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "sent invitations", gin.H{"list": list})
}

func (h *FriendHandler) ListReceivedInvitations(c *gin.Context) {
	list, err := h.svc.ListReceivedInvitations(userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "received invitations", gin.H{"list": list})
}
