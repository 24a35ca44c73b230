package mysql

import (
	"CollabHub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository struct {
	DB *gorm.DB
}

// Create 建项目并让创建者以 owner 身份入组，同一事务
func (r *ProjectRepository) Create(p *model.Project) (*model.Project, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		mRepo := &ProjectMemberRepository{DB: tx}
		return mRepo.Join(&model.ProjectMember{
			ProjectID: p.ID,
			UserID:    p.CreatorID,
			Role:      1,
		})
	})
	return p, err
}

func (r *ProjectRepository) FindByID(id uint64) (*model.Project, error) {
	var p model.Project
	err := r.DB.First(&p, id).Error
	return &p, err
}

func (r *ProjectRepository) List(offset, limit int) ([]model.Project, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Project
	err := r.DB.Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

type ProjectMemberRepository struct {
	DB *gorm.DB
}

// Join 幂等插入：已存在 (project_id, user_id) 则不报错
func (r *ProjectMemberRepository) Join(member *model.ProjectMember) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(member).Error
}

func (r *ProjectMemberRepository) Leave(projectID, userID uint64) error {
	return r.DB.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectMember{}).Error
}

func (r *ProjectMemberRepository) IsMember(projectID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}
