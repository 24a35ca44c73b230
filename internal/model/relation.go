package model

import "time"

// Friendship 对称好友关系，存规范化无序对：UserLowID < UserHighID
// 幂等判断退化为一次唯一键查询
type Friendship struct {
	ID         uint64 `gorm:"primaryKey"`
	UserLowID  uint64 `gorm:"not null;index;uniqueIndex:uk_friend_pair"`
	UserHighID uint64 `gorm:"not null;index;uniqueIndex:uk_friend_pair"`
	CreatedAt  time.Time
}

func (Friendship) TableName() string { return "friendships" }

// NormalizePair 无序对规范化
func NormalizePair(a, b uint64) (low, high uint64) {
	if a < b {
		return a, b
	}
	return b, a
}

// Invitation 有向邀请边，sent/received 是同一张表的两个视角
type Invitation struct {
	ID        uint64 `gorm:"primaryKey"`
	FromID    uint64 `gorm:"not null;index;uniqueIndex:uk_invitation_edge"`
	ToID      uint64 `gorm:"not null;index;uniqueIndex:uk_invitation_edge"`
	CreatedAt time.Time
}

func (Invitation) TableName() string { return "invitations" }
