package mysql

import (
	"errors"

	"CollabHub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendshipRepository struct {
	DB *gorm.DB
}

func (r *FriendshipRepository) Exists(a, b uint64) (bool, error) {
	low, high := model.NormalizePair(a, b)
	var count int64
	err := r.DB.Model(&model.Friendship{}).
		Where("user_low_id = ? AND user_high_id = ?", low, high).
		Count(&count).Error
	return count > 0, err
}

// Add 幂等插入规范化无序对
func (r *FriendshipRepository) Add(a, b uint64) error {
	low, high := model.NormalizePair(a, b)
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_low_id"}, {Name: "user_high_id"}},
		DoNothing: true,
	}).Create(&model.Friendship{UserLowID: low, UserHighID: high}).Error
}

// Remove 幂等删除，边不存在也算成功
func (r *FriendshipRepository) Remove(a, b uint64) error {
	low, high := model.NormalizePair(a, b)
	return r.DB.Where("user_low_id = ? AND user_high_id = ?", low, high).
		Delete(&model.Friendship{}).Error
}

// ListFriends 对称关系两列都查
func (r *FriendshipRepository) ListFriends(userID uint64) ([]model.User, error) {
	var list []model.User
	err := r.DB.Model(&model.User{}).
		Joins("JOIN friendships ON (friendships.user_low_id = users.id AND friendships.user_high_id = ?) OR (friendships.user_high_id = users.id AND friendships.user_low_id = ?)", userID, userID).
		Order("users.id asc").
		Find(&list).Error
	return list, err
}

type InvitationRepository struct {
	DB *gorm.DB
}

func (r *InvitationRepository) Exists(fromID, toID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Invitation{}).
		Where("from_id = ? AND to_id = ?", fromID, toID).
		Count(&count).Error
	return count > 0, err
}

// Create 幂等插入有向边
func (r *InvitationRepository) Create(fromID, toID uint64) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_id"}, {Name: "to_id"}},
		DoNothing: true,
	}).Create(&model.Invitation{FromID: fromID, ToID: toID}).Error
}

// Delete 返回是否真的删掉了边
func (r *InvitationRepository) Delete(fromID, toID uint64) (bool, error) {
	tx := r.DB.Where("from_id = ? AND to_id = ?", fromID, toID).
		Delete(&model.Invitation{})
	return tx.RowsAffected > 0, tx.Error
}

// Accept 删邀请边 + 建好友边 + 记 outbox 事件，一个事务。
// 邀请不存在返回 gorm.ErrRecordNotFound。
func (r *InvitationRepository) Accept(fromID, toID uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("from_id = ? AND to_id = ?", fromID, toID).
			Delete(&model.Invitation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		fRepo := &FriendshipRepository{DB: tx}
		if err := fRepo.Add(fromID, toID); err != nil {
			return err
		}
		obRepo := &OutboxRepository{}
		return obRepo.Insert(tx, "friend.accepted", toID, fromID)
	})
}

func (r *InvitationRepository) ListSent(userID uint64) ([]model.Invitation, error) {
	var list []model.Invitation
	err := r.DB.Where("from_id = ?", userID).Order("id desc").Find(&list).Error
	return list, err
}

func (r *InvitationRepository) ListReceived(userID uint64) ([]model.Invitation, error) {
	var list []model.Invitation
	err := r.DB.Where("to_id = ?", userID).Order("id desc").Find(&list).Error
	return list, err
}

// IsNotFound 邀请语义里的未命中判断
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
