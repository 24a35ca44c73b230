package redis

import (
	"context"
	"fmt"
	"time"
)

const (
	RateConvCreatePrefix = "rl:conv:create:user" // 每用户每日创建会话
	RateConvDeletePrefix = "rl:conv:delete:user" // 每用户每日删除会话
	RateMessagePrefix    = "rl:msg:conv"         // 每会话每日消息量（不分发送者）
)

// RateLimitRepository 24 小时窗口的原子计数器。
// 读-比-写的竞态用 INCR 收口：先占名额再落库，落库失败回退。
type RateLimitRepository struct{}

// incrScript 首次自增时设置过期，窗口从第一次动作起算
const incrScript = `
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`

func (r *RateLimitRepository) incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	res := Client.Eval(ctx, incrScript, []string{key}, int64(window/time.Millisecond))
	if err := res.Err(); err != nil {
		return 0, err
	}
	return res.Int64()
}

// IncrConversationCreate 占一个创建名额，返回占用后的计数
func (r *RateLimitRepository) IncrConversationCreate(ctx context.Context, userID uint64, window time.Duration) (int64, error) {
	key := fmt.Sprintf("%s:%d", RateConvCreatePrefix, userID)
	return r.incr(ctx, key, window)
}

// DecrConversationCreate 落库失败时把名额退回去
func (r *RateLimitRepository) DecrConversationCreate(ctx context.Context, userID uint64) {
	key := fmt.Sprintf("%s:%d", RateConvCreatePrefix, userID)
	_ = Client.Decr(ctx, key).Err()
}

func (r *RateLimitRepository) IncrConversationDelete(ctx context.Context, userID uint64, window time.Duration) (int64, error) {
	key := fmt.Sprintf("%s:%d", RateConvDeletePrefix, userID)
	return r.incr(ctx, key, window)
}

func (r *RateLimitRepository) DecrConversationDelete(ctx context.Context, userID uint64) {
	key := fmt.Sprintf("%s:%d", RateConvDeletePrefix, userID)
	_ = Client.Decr(ctx, key).Err()
}

// IncrConversationMessage 会话维度的消息频控，发送者不区分
func (r *RateLimitRepository) IncrConversationMessage(ctx context.Context, conversationID uint64, window time.Duration) (int64, error) {
	key := fmt.Sprintf("%s:%d", RateMessagePrefix, conversationID)
	return r.incr(ctx, key, window)
}

func (r *RateLimitRepository) DecrConversationMessage(ctx context.Context, conversationID uint64) {
	key := fmt.Sprintf("%s:%d", RateMessagePrefix, conversationID)
	_ = Client.Decr(ctx, key).Err()
}
