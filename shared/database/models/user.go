package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a row of the ASP.NET Identity users table.
type User struct {
	ID                   string         `gorm:"column:Id;primaryKey"`
	CreatedAt            time.Time      `gorm:"column:CreatedAt"`
	UpdatedAt            time.Time      `gorm:"column:UpdatedAt"`
	DeletedAt            gorm.DeletedAt `gorm:"column:DeletedAt"`
	Active               bool           `gorm:"column:Active"`
	UserName             string         `gorm:"column:UserName;size:256"`
	NormalizedUserName   string         `gorm:"column:NormalizedUserName;size:256"`
	Email                string         `gorm:"column:Email;size:256"`
	NormalizedEmail      string         `gorm:"column:NormalizedEmail;size:256"`
	EmailConfirmed       bool           `gorm:"column:EmailConfirmed"`
	PasswordHash         string         `gorm:"column:PasswordHash"`
	SecurityStamp        string         `gorm:"column:SecurityStamp"`
	ConcurrencyStamp     string         `gorm:"column:ConcurrencyStamp"`
	PhoneNumber          string         `gorm:"column:PhoneNumber"`
	PhoneNumberConfirmed bool           `gorm:"column:PhoneNumberConfirmed"`
	TwoFactorEnabled     bool           `gorm:"column:TwoFactorEnabled"`
	LockoutEnd           *time.Time     `gorm:"column:LockoutEnd"`
	LockoutEnabled       bool           `gorm:"column:LockoutEnabled"`
	AccessFailedCount    int            `gorm:"column:AccessFailedCount"`
	Balance              float64        `gorm:"column:Balance"`
}

func (User) TableName() string {
	return "AspNetUsers"
}
