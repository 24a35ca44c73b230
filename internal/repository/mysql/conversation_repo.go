package mysql

import (
	"errors"

	"CollabHub/internal/model"

	"gorm.io/gorm"
)

type ConversationRepository struct {
	DB *gorm.DB
}

// ConversationPreview 会话列表行：最近一条消息做预览
type ConversationPreview struct {
	Conversation     model.Conversation
	ParticipantCount int64
	LastMessage      *model.Message
}

// CreateWithParticipants 会话 + 成员行 + outbox 事件同一事务落库。
// conversation_hash 上的唯一索引兜住并发下的重复创建。
func (r *ConversationRepository) CreateWithParticipants(conv *model.Conversation, participantIDs []uint64, actorID uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conv).Error; err != nil {
			return err
		}
		rows := make([]model.ConversationParticipant, 0, len(participantIDs))
		for _, uid := range participantIDs {
			rows = append(rows, model.ConversationParticipant{
				ConversationID: conv.ID,
				UserID:         uid,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		obRepo := &OutboxRepository{}
		return obRepo.Insert(tx, "conversation.created", actorID, conv.ID)
	})
}

func (r *ConversationRepository) FindByID(id uint64) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.DB.First(&conv, id).Error
	return &conv, err
}

// FindByHash 重复会话探测；未命中返回 (nil, nil)
func (r *ConversationRepository) FindByHash(hash string) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.DB.Where("conversation_hash = ?", hash).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *ConversationRepository) IsParticipant(conversationID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ConversationRepository) MessageCount(conversationID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Message{}).
		Where("conversation_id = ?", conversationID).
		Count(&count).Error
	return count, err
}

// DeleteCascade 会话、成员行、消息一个事务内级联删除，并记 outbox 事件
func (r *ConversationRepository) DeleteCascade(conversationID, actorID uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", conversationID).
			Delete(&model.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("conversation_id = ?", conversationID).
			Delete(&model.ConversationParticipant{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Conversation{}, conversationID).Error; err != nil {
			return err
		}
		obRepo := &OutboxRepository{}
		return obRepo.Insert(tx, "conversation.deleted", actorID, conversationID)
	})
}

// ListByUser 按最近活跃排序，附带预览消息与成员数
func (r *ConversationRepository) ListByUser(userID uint64) ([]ConversationPreview, error) {
	var convs []model.Conversation
	err := r.DB.Model(&model.Conversation{}).
		Joins("JOIN conversation_participants ON conversation_participants.conversation_id = conversations.id").
		Where("conversation_participants.user_id = ?", userID).
		Order("conversations.last_message_at desc").
		Find(&convs).Error
	if err != nil {
		return nil, err
	}

	out := make([]ConversationPreview, 0, len(convs))
	for i := range convs {
		preview := ConversationPreview{Conversation: convs[i]}
		if err = r.DB.Model(&model.ConversationParticipant{}).
			Where("conversation_id = ?", convs[i].ID).
			Count(&preview.ParticipantCount).Error; err != nil {
			return nil, err
		}
		var last model.Message
		err = r.DB.Where("conversation_id = ?", convs[i].ID).
			Order("created_at desc, id desc").
			First(&last).Error
		if err == nil {
			preview.LastMessage = &last
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		out = append(out, preview)
	}
	return out, nil
}
