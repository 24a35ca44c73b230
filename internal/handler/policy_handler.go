package handler

import (
	"CollabHub/internal/limits"

	"github.com/gin-gonic/gin"
)

// PolicyHandler 策略表只读快照，永远 200，无副作用
type PolicyHandler struct {
	lim *limits.Limits
}

func NewPolicyHandler(lim *limits.Limits) *PolicyHandler {
	return &PolicyHandler{lim: lim}
}

func (h *PolicyHandler) Get(c *gin.Context) {
	ok(c, "policy", h.lim.Snapshot())
}
