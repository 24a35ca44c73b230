package service

import (
	"errors"
	"time"
	"unicode/utf8"

	"CollabHub/internal/limits"
	"CollabHub/internal/model"
	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/mysql"

	"gorm.io/gorm"
)

type ProjectService struct {
	repo       *mysql.ProjectRepository
	memberRepo *mysql.ProjectMemberRepository
	lim        *limits.Limits
}

func NewProjectService(lim *limits.Limits) *ProjectService {
	return &ProjectService{
		repo:       &mysql.ProjectRepository{DB: mysql.DB},
		memberRepo: &mysql.ProjectMemberRepository{DB: mysql.DB},
		lim:        lim,
	}
}

// ProjectList 分页结果
type ProjectList struct {
	Items []model.Project `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (s *ProjectService) CreateProject(userID uint64, name, description, requiredSkills string, startAt, endAt *time.Time) (*model.Project, error) {
	if name == "" {
		return nil, pkg.Validation("project name is required")
	}
	if utf8.RuneCountInString(name) > s.lim.ProjectNameMax {
		return nil, pkg.Validation("project name must be at most %d characters", s.lim.ProjectNameMax)
	}
	if startAt != nil && endAt != nil && !startAt.Before(*endAt) {
		return nil, pkg.Validation("project start must be before end")
	}

	project := &model.Project{
		Name:           name,
		Description:    description,
		RequiredSkills: requiredSkills,
		CreatorID:      userID,
		StartAt:        startAt,
		EndAt:          endAt,
	}
	if _, err := s.repo.Create(project); err != nil {
		return nil, pkg.Internal(err)
	}
	return project, nil
}

func (s *ProjectService) GetProject(id uint64) (*model.Project, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("project")
		}
		return nil, pkg.Internal(err)
	}
	return project, nil
}

func (s *ProjectService) ListProjects(page, limit int) (*ProjectList, error) {
	page = s.lim.ClampPage(page)
	limit = s.lim.ClampLimit(limit)
	offset := (page - 1) * limit
	if offset > s.lim.PaginationMaxOffset {
		return nil, pkg.Validation("page offset exceeds maximum of %d", s.lim.PaginationMaxOffset)
	}
	items, total, err := s.repo.List(offset, limit)
	if err != nil {
		return nil, pkg.Internal(err)
	}
	return &ProjectList{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// JoinProject 幂等入组
func (s *ProjectService) JoinProject(userID, projectID uint64) error {
	if _, err := s.GetProject(projectID); err != nil {
		return err
	}
	if err := s.memberRepo.Join(&model.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      0,
	}); err != nil {
		return pkg.Internal(err)
	}
	return nil
}

func (s *ProjectService) LeaveProject(userID, projectID uint64) error {
	if err := s.memberRepo.Leave(projectID, userID); err != nil {
		return pkg.Internal(err)
	}
	return nil
}
