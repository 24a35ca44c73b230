package pkg

import (
	"fmt"
	"net/http"
)

// Kind 业务错误分类，handler 据此映射 HTTP 状态码
type Kind int

const (
	KindValidation Kind = iota + 1
	KindRateLimit
	KindNotFound
	KindForbidden
	KindUnauthenticated
	KindConflict
	KindPolicyBlocked
	KindInternal
)

// Error 带机器可读 code 的业务错误
// RateLimit 类错误额外携带 limit/window，客户端可据此退避
type Error struct {
	Kind        Kind
	Code        string
	Message     string
	Limit       int64
	WindowHours int
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus 固定映射，不因消息内容变化
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindRateLimit:
		return http.StatusTooManyRequests
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden, KindPolicyBlocked:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION_FAILED", Message: fmt.Sprintf(format, args...)}
}

func RateLimited(action string, limit int64, windowHours int) *Error {
	return &Error{
		Kind:        KindRateLimit,
		Code:        "RATE_LIMIT_EXCEEDED",
		Message:     fmt.Sprintf("%s rate limit exceeded: at most %d per %dh", action, limit, windowHours),
		Limit:       limit,
		WindowHours: windowHours,
	}
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Code: "NOT_FOUND", Message: what + " not found"}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Code: "FORBIDDEN", Message: message}
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Code: "UNAUTHENTICATED", Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Code: "CONFLICT", Message: message}
}

// PolicyBlocked 结构性拒绝，不带时间窗口，重试无意义
func PolicyBlocked(message string) *Error {
	return &Error{Kind: KindPolicyBlocked, Code: "POLICY_BLOCKED", Message: message}
}

// Internal 对外只暴露固定文案，原始错误留给日志
func Internal(err error) *Error {
	_ = err
	return &Error{Kind: KindInternal, Code: "INTERNAL", Message: "internal error"}
}

// AsError 把任意 error 归一成 *Error，未知错误按 Internal 处理
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return Internal(err)
}
