package service

import (
	"errors"

	"CollabHub/internal/model"
	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/mysql"

	"gorm.io/gorm"
)

// 角色常量与 model.User.Role 对应
const RoleAdmin = 1

type SkillService struct {
	repo      *mysql.SkillRepository
	userSkill *mysql.UserSkillRepository
}

func NewSkillService() *SkillService {
	return &SkillService{
		repo:      &mysql.SkillRepository{DB: mysql.DB},
		userSkill: &mysql.UserSkillRepository{DB: mysql.DB},
	}
}

// CreateSkill 技能字典只有管理员能写
func (s *SkillService) CreateSkill(actorRole int, name, description, duration, technologies string) (*model.Skill, error) {
	if actorRole != RoleAdmin {
		return nil, pkg.Forbidden("only admins can manage skills")
	}
	if name == "" {
		return nil, pkg.Validation("skill name is required")
	}
	skill := &model.Skill{
		Name:         name,
		Description:  description,
		Duration:     duration,
		Technologies: technologies,
	}
	if err := s.repo.Create(skill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkg.Conflict("skill name already exists")
		}
		return nil, pkg.Internal(err)
	}
	return skill, nil
}

func (s *SkillService) ListSkills() ([]model.Skill, error) {
	list, err := s.repo.List()
	if err != nil {
		return nil, pkg.Internal(err)
	}
	return list, nil
}

// AttachSkill 幂等挂到自己的资料上
func (s *SkillService) AttachSkill(userID, skillID uint64) error {
	if _, err := s.repo.FindByID(skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("skill")
		}
		return pkg.Internal(err)
	}
	if err := s.userSkill.Attach(userID, skillID); err != nil {
		return pkg.Internal(err)
	}
	return nil
}

func (s *SkillService) DetachSkill(userID, skillID uint64) error {
	if err := s.userSkill.Detach(userID, skillID); err != nil {
		return pkg.Internal(err)
	}
	return nil
}
