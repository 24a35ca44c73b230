package service

import (
	"context"
	"time"
)

// RateLimiter 24 小时窗口原子计数器的抽象，生产实现是 redis.RateLimitRepository
type RateLimiter interface {
	IncrConversationCreate(ctx context.Context, userID uint64, window time.Duration) (int64, error)
	DecrConversationCreate(ctx context.Context, userID uint64)
	IncrConversationDelete(ctx context.Context, userID uint64, window time.Duration) (int64, error)
	DecrConversationDelete(ctx context.Context, userID uint64)
	IncrConversationMessage(ctx context.Context, conversationID uint64, window time.Duration) (int64, error)
	DecrConversationMessage(ctx context.Context, conversationID uint64)
}
