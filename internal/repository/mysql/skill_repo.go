package mysql

import (
	"CollabHub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillRepository struct {
	DB *gorm.DB
}

func (r *SkillRepository) Create(skill *model.Skill) error {
	return r.DB.Create(skill).Error
}

func (r *SkillRepository) FindByID(id uint64) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.First(&skill, id).Error
	return &skill, err
}

func (r *SkillRepository) List() ([]model.Skill, error) {
	var list []model.Skill
	err := r.DB.Order("id asc").Find(&list).Error
	return list, err
}

type UserSkillRepository struct {
	DB *gorm.DB
}

// Attach 幂等挂载：已存在 (user_id, skill_id) 则不报错
func (r *UserSkillRepository) Attach(userID, skillID uint64) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
		DoNothing: true,
	}).Create(&model.UserSkill{UserID: userID, SkillID: skillID}).Error
}

func (r *UserSkillRepository) Detach(userID, skillID uint64) error {
	return r.DB.Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&model.UserSkill{}).Error
}

func (r *UserSkillRepository) ListByUser(userID uint64) ([]model.Skill, error) {
	var list []model.Skill
	err := r.DB.Model(&model.Skill{}).
		Joins("JOIN user_skills ON user_skills.skill_id = skills.id").
		Where("user_skills.user_id = ?", userID).
		Order("skills.id asc").
		Find(&list).Error
	return list, err
}
