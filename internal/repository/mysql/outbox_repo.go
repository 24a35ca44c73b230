package mysql

import (
	"context"
	"encoding/json"
	"time"

	"CollabHub/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// Insert 在调用方事务内写一条待投递事件
func (r *OutboxRepository) Insert(tx *gorm.DB, eventType string, actorID, subjectID uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"actor":      actorID,
		"subject":    subjectID,
	})
	ob := &model.ChatOutbox{
		EventType: eventType,
		ActorID:   actorID,
		SubjectID: subjectID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}

func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.ChatOutbox, error) {
	var list []model.ChatOutbox
	if err := r.DB.WithContext(ctx).
		Where("status IN (0, 2)").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RetryUpdate 投递失败记一次重试
func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ChatOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ChatOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}
