package router

import (
	"CollabHub/internal/config"
	"CollabHub/internal/handler"
	"CollabHub/internal/limits"
	"CollabHub/internal/middleware"
	"CollabHub/internal/pkg"
	"CollabHub/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg *config.Config, lim *limits.Limits) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.BodyLimit(lim.MaxPayloadBytes))

	emailCfg := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	emailSvc := service.NewEmailService(emailCfg)
	user := handler.NewUserHandler(service.NewUserService(lim, emailSvc))
	email := handler.NewEmailHandler(emailSvc)
	skill := handler.NewSkillHandler(service.NewSkillService())
	project := handler.NewProjectHandler(service.NewProjectService(lim))
	conversation := handler.NewConversationHandler(service.NewConversationService(lim))
	message := handler.NewMessageHandler(service.NewMessageService(lim))
	friend := handler.NewFriendHandler(service.NewFriendService())
	policy := handler.NewPolicyHandler(lim)

	// 策略表只读快照，无需登录
	r.GET("/api/policy", policy.Get)

	// 邮件相关接口
	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/reset/code", email.SendResetCode)
	}

	// 用户相关接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态用户接口
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
		authGroup.GET("/me", user.Me)
		authGroup.PUT("/profile", user.UpdateProfile)
		authGroup.POST("/profile/skills/:id", skill.Attach)
		authGroup.DELETE("/profile/skills/:id", skill.Detach)
	}

	// 技能字典
	skillGroup := r.Group("/api/skill")
	{
		skillGroup.GET("/list", skill.List)
	}
	skillAdmin := r.Group("/api/skill")
	skillAdmin.Use(middleware.AuthMiddleware())
	{
		skillAdmin.POST("/create", skill.Create)
	}

	// 项目相关接口
	projectGroup := r.Group("/api/project")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.POST("/create", project.Create)
		projectGroup.GET("/list", project.List)
		projectGroup.GET("/:id", project.Get)
		projectGroup.POST("/:id/join", project.Join)
		projectGroup.POST("/:id/leave", project.Leave)
	}

	// 会话与消息接口
	convGroup := r.Group("/api/conversation")
	convGroup.Use(middleware.AuthMiddleware())
	{
		convGroup.POST("/create", conversation.Create)
		convGroup.DELETE("/:id", conversation.Delete)
		convGroup.GET("/list", conversation.List)
		convGroup.POST("/:id/message", message.Create)
		convGroup.GET("/:id/message", message.List)
	}
	msgGroup := r.Group("/api/message")
	msgGroup.Use(middleware.AuthMiddleware())
	{
		msgGroup.DELETE("/:id", message.Delete)
	}

	// 好友与邀请接口
	friendGroup := r.Group("/api/friend")
	friendGroup.Use(middleware.AuthMiddleware())
	{
		friendGroup.GET("/list", friend.ListFriends)
		friendGroup.DELETE("/:id", friend.RemoveFriend)
	}
	inviteGroup := r.Group("/api/invitation")
	inviteGroup.Use(middleware.AuthMiddleware())
	{
		inviteGroup.POST("/:id", friend.SendInvitation)
		inviteGroup.POST("/:id/accept", friend.AcceptInvitation)
		inviteGroup.POST("/:id/reject", friend.RejectInvitation)
		inviteGroup.GET("/sent", friend.ListSentInvitations)
		inviteGroup.GET("/received", friend.ListReceivedInvitations)
	}

	return r
}
