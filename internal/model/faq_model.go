package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FAQ struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question   string         `gorm:"type:text;not null"`
	Answer     string         `gorm:"type:text;not null"`
	Category   string         `gorm:"type:varchar(100);index"`
	Status     string         `gorm:"type:varchar(30);not null;default:'ACTIVE';index"`
	ReviewedBy string         `gorm:"type:varchar(100)"`
	ReviewNote string         `gorm:"type:text"`
	ReviewedAt *time.Time     ``
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (FAQ) TableName() string {
	return "faqs"
}
