package service

// SessionStore 单点登录会话存储的抽象，生产实现是 redis.SessionRepository
type SessionStore interface {
	AddUserToken(usrID uint64, token string) error
	GetUserToken(usrID uint64) (string, error)
	ExtendUserToken(usrID uint64) error
	DeleteUserToken(usrID uint64) error
}
