package model

import "time"

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	Role      int    `gorm:"not null;default:0"` // 0=user, 1=admin
	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`
	// 可用时间窗口，可选，跨度受策略表约束
	AvailabilityStart *time.Time
	AvailabilityEnd   *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Skill 技能字典，管理员维护
type Skill struct {
	ID           uint64 `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:100;not null"`
	Description  string `gorm:"type:text"`
	Duration     string `gorm:"size:64"`
	Technologies string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserSkill struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_skill"`
	SkillID   uint64 `gorm:"not null;index;uniqueIndex:uk_user_skill"`
	CreatedAt time.Time
}

func (UserSkill) TableName() string { return "user_skills" }
