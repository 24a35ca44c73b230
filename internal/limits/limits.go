package limits

import (
	"CollabHub/internal/config"
)

// Limits 业务策略表：分页、内容长度、参与人数、频控、删除阈值等
// 启动时构造一次，注入各 service，之后只读
type Limits struct {
	// 分页
	PaginationMinPage      int
	PaginationMaxPage      int
	PaginationMinLimit     int
	PaginationMaxLimit     int
	PaginationDefaultLimit int
	PaginationMaxOffset    int

	// 内容长度
	MaxPayloadBytes            int64
	ConversationTitleMax       int
	ConversationDescriptionMax int
	MessageContentMax          int
	UserNameMin                int
	UserNameMax                int
	EmailMax                   int
	ProjectNameMax             int

	// 会话参与人数
	ConversationMinParticipants int
	ConversationMaxParticipants int

	// 频控（24 小时窗口）
	MessagesPerDayPerConversation    int64
	ConversationCreatesPerDayPerUser int64
	ConversationDeletesPerDayPerUser int64
	RateLimitWindowHours             int

	// 删除策略
	ConversationMaxMessagesForDelete int64
	DeletionRequiresApproval         bool
	MinApproversRequired             int

	// 可用时间区间
	AvailabilityMaxRangeDays int

	// 安全
	RegexBacktrackLimit int
	MaxExecutionSeconds int
	JSONMaxDepth        int
}

// FromEnv 缺省值即线上默认策略，每一项都可用环境变量覆盖
func FromEnv() *Limits {
	return &Limits{
		PaginationMinPage:      config.GetEnvInt("LIMIT_PAGINATION_MIN_PAGE", 1),
		PaginationMaxPage:      config.GetEnvInt("LIMIT_PAGINATION_MAX_PAGE", 1000),
		PaginationMinLimit:     config.GetEnvInt("LIMIT_PAGINATION_MIN_LIMIT", 10),
		PaginationMaxLimit:     config.GetEnvInt("LIMIT_PAGINATION_MAX_LIMIT", 100),
		PaginationDefaultLimit: config.GetEnvInt("LIMIT_PAGINATION_DEFAULT_LIMIT", 20),
		PaginationMaxOffset:    config.GetEnvInt("LIMIT_PAGINATION_MAX_OFFSET", 100000),

		MaxPayloadBytes:            config.GetEnvInt64("LIMIT_MAX_PAYLOAD_BYTES", 10000),
		ConversationTitleMax:       config.GetEnvInt("LIMIT_CONVERSATION_TITLE_MAX", 255),
		ConversationDescriptionMax: config.GetEnvInt("LIMIT_CONVERSATION_DESCRIPTION_MAX", 1000),
		MessageContentMax:          config.GetEnvInt("LIMIT_MESSAGE_CONTENT_MAX", 250),
		UserNameMin:                config.GetEnvInt("LIMIT_USER_NAME_MIN", 2),
		UserNameMax:                config.GetEnvInt("LIMIT_USER_NAME_MAX", 100),
		EmailMax:                   config.GetEnvInt("LIMIT_EMAIL_MAX", 255),
		ProjectNameMax:             config.GetEnvInt("LIMIT_PROJECT_NAME_MAX", 25),

		ConversationMinParticipants: config.GetEnvInt("LIMIT_CONVERSATION_MIN_PARTICIPANTS", 2),
		ConversationMaxParticipants: config.GetEnvInt("LIMIT_CONVERSATION_MAX_PARTICIPANTS", 50),

		MessagesPerDayPerConversation:    config.GetEnvInt64("LIMIT_MESSAGES_PER_DAY_PER_CONVERSATION", 100),
		ConversationCreatesPerDayPerUser: config.GetEnvInt64("LIMIT_CONVERSATION_CREATES_PER_DAY", 20),
		ConversationDeletesPerDayPerUser: config.GetEnvInt64("LIMIT_CONVERSATION_DELETES_PER_DAY", 50),
		RateLimitWindowHours:             config.GetEnvInt("LIMIT_RATE_WINDOW_HOURS", 24),

		ConversationMaxMessagesForDelete: config.GetEnvInt64("LIMIT_CONVERSATION_MAX_MESSAGES_FOR_DELETE", 10000),
		DeletionRequiresApproval:         config.GetEnvBool("LIMIT_DELETION_REQUIRES_APPROVAL", false),
		MinApproversRequired:             config.GetEnvInt("LIMIT_MIN_APPROVERS_REQUIRED", 2),

		AvailabilityMaxRangeDays: config.GetEnvInt("LIMIT_AVAILABILITY_MAX_RANGE_DAYS", 730),

		RegexBacktrackLimit: config.GetEnvInt("LIMIT_REGEX_BACKTRACK", 100000),
		MaxExecutionSeconds: config.GetEnvInt("LIMIT_MAX_EXECUTION_SECONDS", 30),
		JSONMaxDepth:        config.GetEnvInt("LIMIT_JSON_MAX_DEPTH", 10),
	}
}

// ClampPage 分页参数夹取是刻意的交互让步，业务值越界一律报错不夹取
func (l *Limits) ClampPage(page int) int {
	if page < l.PaginationMinPage {
		return l.PaginationMinPage
	}
	if page > l.PaginationMaxPage {
		return l.PaginationMaxPage
	}
	return page
}

// ClampLimit limit<=0 视为未指定，取默认值
func (l *Limits) ClampLimit(limit int) int {
	if limit == 0 {
		return l.PaginationDefaultLimit
	}
	if limit < l.PaginationMinLimit {
		return l.PaginationMinLimit
	}
	if limit > l.PaginationMaxLimit {
		return l.PaginationMaxLimit
	}
	return limit
}

// Snapshot 全表只读快照，供 /api/policy 原样返回
func (l *Limits) Snapshot() map[string]any {
	return map[string]any{
		"pagination": map[string]any{
			"min_page":      l.PaginationMinPage,
			"max_page":      l.PaginationMaxPage,
			"min_limit":     l.PaginationMinLimit,
			"max_limit":     l.PaginationMaxLimit,
			"default_limit": l.PaginationDefaultLimit,
			"max_offset":    l.PaginationMaxOffset,
		},
		"content": map[string]any{
			"max_payload_bytes":            l.MaxPayloadBytes,
			"conversation_title_max":       l.ConversationTitleMax,
			"conversation_description_max": l.ConversationDescriptionMax,
			"message_content_max":          l.MessageContentMax,
			"user_name_min":                l.UserNameMin,
			"user_name_max":                l.UserNameMax,
			"email_max":                    l.EmailMax,
			"project_name_max":             l.ProjectNameMax,
		},
		"participants": map[string]any{
			"conversation_min": l.ConversationMinParticipants,
			"conversation_max": l.ConversationMaxParticipants,
		},
		"rate_limits": map[string]any{
			"messages_per_day_per_conversation": l.MessagesPerDayPerConversation,
			"conversation_creates_per_day":      l.ConversationCreatesPerDayPerUser,
			"conversation_deletes_per_day":      l.ConversationDeletesPerDayPerUser,
			"window_hours":                      l.RateLimitWindowHours,
		},
		"deletion": map[string]any{
			"conversation_max_messages_for_delete": l.ConversationMaxMessagesForDelete,
			"requires_approval":                    l.DeletionRequiresApproval,
			"min_approvers_required":               l.MinApproversRequired,
		},
		"availability": map[string]any{
			"max_range_days": l.AvailabilityMaxRangeDays,
		},
		"security": map[string]any{
			"regex_backtrack_limit": l.RegexBacktrackLimit,
			"max_execution_seconds": l.MaxExecutionSeconds,
			"json_max_depth":        l.JSONMaxDepth,
		},
	}
}
