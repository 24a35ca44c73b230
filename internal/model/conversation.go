package model

import "time"

type Conversation struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"size:255"`
	Description string `gorm:"size:1000"`
	CreatorID   *uint64
	// 参与者集合的规范化哈希，唯一索引兜住并发重复创建
	ConversationHash string    `gorm:"uniqueIndex;size:64;not null"`
	CreatedAt        time.Time // 创建后不再变更
	LastMessageAt    time.Time `gorm:"index"`
}

type ConversationParticipant struct {
	ID             uint64 `gorm:"primaryKey"`
	ConversationID uint64 `gorm:"not null;index;uniqueIndex:uk_conversation_user"`
	UserID         uint64 `gorm:"not null;index;uniqueIndex:uk_conversation_user"`
	CreatedAt      time.Time
}

func (ConversationParticipant) TableName() string { return "conversation_participants" }

type Message struct {
	ID             uint64 `gorm:"primaryKey"`
	ConversationID uint64 `gorm:"not null;index:idx_conv_created,priority:1"`
	AuthorID       uint64 `gorm:"not null;index"`
	Content        string `gorm:"size:250;not null"`
	CreatedAt      time.Time `gorm:"index:idx_conv_created,priority:2"`
}

// ChatOutbox 事件外发表，由 relayer 异步投递到 Kafka
type ChatOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:32;not null"` // conversation.created / conversation.deleted / message.created / friend.accepted
	ActorID   uint64 `gorm:"not null"`
	SubjectID uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ChatOutbox) TableName() string { return "chat_outbox" }
