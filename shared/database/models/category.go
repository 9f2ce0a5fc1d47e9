package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        uuid.UUID      `gorm:"column:Id;primaryKey"`
	Name      string         `gorm:"column:Name"`
	CreatedAt time.Time      `gorm:"column:CreatedAt"`
	UpdatedAt time.Time      `gorm:"column:UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"column:DeletedAt"`
	Active    bool           `gorm:"column:Active"`
}

func (Category) TableName() string {
	return "Categories"
}
