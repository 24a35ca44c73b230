package service

import (
	"context"
	"log"
	"time"

	"CollabHub/internal/model"
	"CollabHub/internal/repository/mysql"
)

type Sender func(ctx context.Context, ob *model.ChatOutbox) error

// OutboxRelayer 周期性扫描 chat_outbox，把待投递事件交给 sender
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: mysql.DB},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

// Run 直到 ctx 取消
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// LogSender 未配置 Kafka 时的降级 sender
func LogSender(ctx context.Context, ob *model.ChatOutbox) error {
	log.Printf("OUTBOX SEND type=%s actor=%d subject=%d payload=%s", ob.EventType, ob.ActorID, ob.SubjectID, ob.Payload)
	return nil
}
