package server

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillRecord and ProjectRecord back the compatibility API that predates the
// document store. Field names mirror the original wire format, so existing
// clients keep working.
type SkillRecord struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Img  string `json:"img"`
}

func (SkillRecord) TableName() string { return "skills" }

func (r *SkillRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type ProjectRecord struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Img         string `json:"img"`
	LiveURL     string `json:"liveUrl"`
	SourceURL   string `json:"sourceUrl"`
}

func (ProjectRecord) TableName() string { return "projects" }

func (r *ProjectRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
