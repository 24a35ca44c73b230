package model

import "time"

type Project struct {
	ID             uint64 `gorm:"primaryKey"`
	Name           string `gorm:"size:25;not null"`
	Description    string `gorm:"type:text"`
	RequiredSkills string `gorm:"type:text"`
	CreatorID      uint64 `gorm:"not null;index"`
	StartAt        *time.Time
	EndAt          *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ProjectMember struct {
	ID        uint64 `gorm:"primaryKey"`
	ProjectID uint64 `gorm:"not null;index;uniqueIndex:uk_project_user"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_project_user"`
	Role      int    `gorm:"not null;default:0"` // 0=member, 1=owner
	CreatedAt time.Time
	UpdatedAt time.Time
}
