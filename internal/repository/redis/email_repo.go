package redis

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultEmailCodeTTL = 5 * time.Minute
	EmailCodePrefix     = "email:code:reset"

	// 两阶段键：先写 pending，邮件发出后转 confirmed，校验只认 confirmed
	PendingSuffix   = "pending"
	ConfirmedSuffix = "confirmed"
)

var (
	ErrEmailNotFound       = errors.New("email code not found")
	ErrEmailCodeDelFailed  = errors.New("email code delete failed")
	ErrCodePendingFailed   = errors.New("code pending failed")
	ErrCodeConfirmedFailed = errors.New("code confirmed failed")
)

type EmailRepository struct{}

// SetResetCodePending 写入重置验证码的 pending 键
func (e *EmailRepository) SetResetCodePending(email, code string) error {
	key := fmt.Sprintf("%s:%s:%s", EmailCodePrefix, PendingSuffix, email)
	if err := Client.Set(context.Background(), key, code, DefaultEmailCodeTTL).Err(); err != nil {
		return ErrCodePendingFailed
	}
	return nil
}

// ConfirmResetCode 将 pending 转为 confirmed（重置 TTL）。
// lua 脚本原子执行：取值 + 写目标 + 设 TTL + 删源。
func (e *EmailRepository) ConfirmResetCode(email string) error {
	srcKey := fmt.Sprintf("%s:%s:%s", EmailCodePrefix, PendingSuffix, email)
	dstKey := fmt.Sprintf("%s:%s:%s", EmailCodePrefix, ConfirmedSuffix, email)

	script := `
local val = redis.call("GET", KEYS[1])
if not val then
  return 0
end
redis.call("SET", KEYS[2], val, "PX", ARGV[1])
redis.call("DEL", KEYS[1])
return 1
`
	px := int64(DefaultEmailCodeTTL / time.Millisecond)
	res := Client.Eval(context.Background(), script, []string{srcKey, dstKey}, px)
	if err := res.Err(); err != nil {
		return ErrCodeConfirmedFailed
	}
	ok, _ := res.Int()
	if ok != 1 {
		return ErrCodeConfirmedFailed
	}
	return nil
}

// DeleteResetCodePending 删除 pending 键（幂等）
func (e *EmailRepository) DeleteResetCodePending(email string) error {
	key := fmt.Sprintf("%s:%s:%s", EmailCodePrefix, PendingSuffix, email)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}

// GetResetCode 校验时取 confirmed 的验证码
func (e *EmailRepository) GetResetCode(email string) (string, error) {
	key := fmt.Sprintf("%s:%s:%s", EmailCodePrefix, ConfirmedSuffix, email)
	val, err := Client.Get(context.Background(), key).Result()
	if err != nil {
		return "", ErrEmailNotFound
	}
	return val, nil
}

// DeleteResetCode 验证码一次性使用，校验通过后删除
func (e *EmailRepository) DeleteResetCode(email string) error {
	key := fmt.Sprintf("%s:%s:%s", EmailCodePrefix, ConfirmedSuffix, email)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}
