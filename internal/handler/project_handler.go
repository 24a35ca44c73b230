package handler

import (
	"strconv"
	"time"

	"CollabHub/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc *service.ProjectService
}

type CreateProjectReq struct {
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	RequiredSkills string     `json:"required_skills"`
	StartAt        *time.Time `json:"start_at"`
	EndAt          *time.Time `json:"end_at"`
}

func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid params")
		return
	}

	project, err := h.svc.CreateProject(userIDFromCtx(c), req.Name, req.Description,
		req.RequiredSkills, req.StartAt, req.EndAt)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, "project created", gin.H{"id": project.ID, "name": project.Name})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}

	project, err := h.svc.GetProject(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "project", project)
}

func (h *ProjectHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.svc.ListProjects(page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "projects", result)
}

func (h *ProjectHandler) Join(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}

	if err := h.svc.JoinProject(userIDFromCtx(c), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "joined project", nil)
}

func (h *ProjectHandler) Leave(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}

	if err := h.svc.LeaveProject(userIDFromCtx(c), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "left project", nil)
}
