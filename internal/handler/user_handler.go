package handler

import (
	"time"

	"CollabHub/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

// RegisterReq 注册请求体
type RegisterReq struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetReq 忘记密码请求体
type ResetReq struct {
	Email       string `json:"email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"new_password"`
}

type ChangePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type UpdateProfileReq struct {
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	AvailabilityStart *time.Time `json:"availability_start"`
	AvailabilityEnd   *time.Time `json:"availability_end"`
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register 注册接口
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid params")
		return
	}

	user, err := h.svc.Register(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, "registered", gin.H{"id": user.ID, "email": user.Email})
}

// Login 登录接口
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid params")
		return
	}

	token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, "logged in", token)
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(userIDFromCtx(c)); err != nil {
		fail(c, err)
		return
	}
	ok(c, "logged out", nil)
}

// TokenRefresh 利用 refresh 换新 token 对
func (h *UserHandler) TokenRefresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid params")
		return
	}

	token, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, "refreshed", token)
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req ResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid params")
		return
	}

	if err := h.svc.ResetPassword(req.Email, req.Code, req.NewPassword); err != nil {
		fail(c, err)
		return
	}

	ok(c, "password reset", nil)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid params")
		return
	}

	if err := h.svc.ChangePassword(userIDFromCtx(c), req.OldPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}

	ok(c, "password changed", nil)
}

// Me 查看自己的资料
func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.svc.GetProfile(userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "profile", profile)
}

// UpdateProfile 更新姓名与可用时间窗口
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid params")
		return
	}

	err := h.svc.UpdateProfile(userIDFromCtx(c), req.FirstName, req.LastName,
		req.AvailabilityStart, req.AvailabilityEnd)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "profile updated", nil)
}
