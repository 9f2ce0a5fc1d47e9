package models

// Role is read only: roles are managed by the application, never seeded.
type Role struct {
	ID             string `gorm:"column:Id;primaryKey"`
	Name           string `gorm:"column:Name;size:256"`
	NormalizedName string `gorm:"column:NormalizedName;size:256"`
}

func (Role) TableName() string {
	return "AspNetRoles"
}

// UserRole joins a user to a role.
type UserRole struct {
	UserID string `gorm:"column:UserId;primaryKey"`
	RoleID string `gorm:"column:RoleId;primaryKey"`
}

func (UserRole) TableName() string {
	return "AspNetUserRoles"
}
