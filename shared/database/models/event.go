package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID                uuid.UUID `gorm:"column:Id;primaryKey"`
	Title             string    `gorm:"column:Title"`
	ImageURL          string    `gorm:"column:ImageUrl"`
	Description       string    `gorm:"column:Description"`
	Date              time.Time `gorm:"column:Date"`
	IsPublished       bool      `gorm:"column:IsPublished"`
	RequireAcceptance bool      `gorm:"column:RequireAcceptance"`
	LimitParticipants int       `gorm:"column:LimitParticipants"`
	Address           string    `gorm:"column:Address"`
	Duration          int       `gorm:"column:Duration"`
	Price             float64   `gorm:"column:Price"`
	OrganizerID       string    `gorm:"column:OrganizerId"`
	CategoryID        uuid.UUID `gorm:"column:CategoryId"`
	Active            bool      `gorm:"column:Active"`
	CreatedAt         time.Time `gorm:"column:CreatedAt"`
	UpdatedAt         time.Time `gorm:"column:UpdatedAt"`
}

func (Event) TableName() string {
	return "Events"
}

// AssistanceTableName is the attendance table of the application. Nothing
// is seeded into it but the application cannot run without it.
const AssistanceTableName = "Assistance"
