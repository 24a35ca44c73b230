package mysql

import (
	"CollabHub/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

// CreateAndTouch 写消息、推进会话 last_message_at、记 outbox 事件，同一事务
func (r *MessageRepository) CreateAndTouch(msg *model.Message) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("last_message_at", msg.CreatedAt).Error; err != nil {
			return err
		}
		obRepo := &OutboxRepository{}
		return obRepo.Insert(tx, "message.created", msg.AuthorID, msg.ID)
	})
}

func (r *MessageRepository) FindByID(id uint64) (*model.Message, error) {
	var msg model.Message
	err := r.DB.First(&msg, id).Error
	return &msg, err
}

// Delete 仅删消息本身，last_message_at 不回退
func (r *MessageRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Message{}, id).Error
}

// ListByConversation 按 created_at 升序分页，同刻并列用 id 打破
func (r *MessageRepository) ListByConversation(conversationID uint64, offset, limit int) ([]model.Message, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Message{}).
		Where("conversation_id = ?", conversationID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Message
	err := r.DB.Where("conversation_id = ?", conversationID).
		Order("created_at asc, id asc").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}
