package model

import "time"

// RoleModel mirrors the 'roles' table, seeded by migrations.
type RoleModel struct {
	ID   int16  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	FullName       string `gorm:"type:varchar(150);not null"`
	Email          string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash   string `gorm:"type:varchar(255);not null"`
	Phone          string `gorm:"type:varchar(50)"`
	DefaultAddress string `gorm:"type:text"`
	RoleID         int16  `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Role *RoleModel `gorm:"foreignKey:RoleID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
