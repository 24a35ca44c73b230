package handler

import (
	"CollabHub/internal/service"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	svc *service.SkillService
}

type CreateSkillReq struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Duration     string `json:"duration"`
	Technologies string `json:"technologies"`
}

func NewSkillHandler(svc *service.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

// Create 管理员维护技能字典
func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid params")
		return
	}

	skill, err := h.svc.CreateSkill(roleFromCtx(c), req.Name, req.Description,
		req.Duration, req.Technologies)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "skill created", gin.H{"id": skill.ID, "name": skill.Name})
}

func (h *SkillHandler) List(c *gin.Context) {
	list, err := h.svc.ListSkills()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "skills", gin.H{"list": list})
}

// Attach 把技能挂到自己的资料上
func (h *SkillHandler) Attach(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}

	if err := h.svc.AttachSkill(userIDFromCtx(c), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "skill attached", nil)
}

func (h *SkillHandler) Detach(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}

	if err := h.svc.DetachSkill(userIDFromCtx(c), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "skill detached", nil)
}
