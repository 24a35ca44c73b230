package mysql

import (
	"time"

	"CollabHub/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) UpdatePassword(user *model.User, newPassword string) error {
	return r.DB.Model(user).Update("password", newPassword).Error
}

// UpdateProfile 只更新资料字段，邮箱与密码走各自入口
func (r *UserRepository) UpdateProfile(id uint64, firstName, lastName string, start, end *time.Time) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Updates(map[string]any{
		"first_name":         firstName,
		"last_name":          lastName,
		"availability_start": start,
		"availability_end":   end,
	}).Error
}

// ExistingIDs 返回给定 id 中实际存在的那部分
func (r *UserRepository) ExistingIDs(ids []uint64) ([]uint64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint64
	err := r.DB.Model(&model.User{}).Where("id IN ?", ids).Pluck("id", &found).Error
	return found, err
}
