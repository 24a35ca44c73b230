package service

import (
	"context"
	"testing"
	"time"

	"CollabHub/internal/limits"

	"github.com/DATA-DOG/go-sqlmock"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newTestDB sqlmock 挂在 gorm 的 mysql dialector 后面
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return gdb, mock
}

func testLimits() *limits.Limits {
	return limits.FromEnv()
}

// fakeSession 内存版单点登录会话存储
type fakeSession struct {
	tokens map[uint64]string
}

func (f *fakeSession) AddUserToken(usrID uint64, token string) error {
	if f.tokens == nil {
		f.tokens = map[uint64]string{}
	}
	f.tokens[usrID] = token
	return nil
}

func (f *fakeSession) GetUserToken(usrID uint64) (string, error) { return f.tokens[usrID], nil }
func (f *fakeSession) ExtendUserToken(usrID uint64) error        { return nil }
func (f *fakeSession) DeleteUserToken(usrID uint64) error {
	delete(f.tokens, usrID)
	return nil
}

// fakeRate 记录调用并返回预设计数
type fakeRate struct {
	next      int64
	err       error
	incrCalls int
	decrCalls int
}

func (f *fakeRate) incr() (int64, error) {
	f.incrCalls++
	return f.next, f.err
}

func (f *fakeRate) IncrConversationCreate(ctx context.Context, userID uint64, window time.Duration) (int64, error) {
	return f.incr()
}
func (f *fakeRate) DecrConversationCreate(ctx context.Context, userID uint64) { f.decrCalls++ }
func (f *fakeRate) IncrConversationDelete(ctx context.Context, userID uint64, window time.Duration) (int64, error) {
	return f.incr()
}
func (f *fakeRate) DecrConversationDelete(ctx context.Context, userID uint64) { f.decrCalls++ }
func (f *fakeRate) IncrConversationMessage(ctx context.Context, conversationID uint64, window time.Duration) (int64, error) {
	return f.incr()
}
func (f *fakeRate) DecrConversationMessage(ctx context.Context, conversationID uint64) { f.decrCalls++ }
