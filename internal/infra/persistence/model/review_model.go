package model

import "time"

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ServiceID int64  `gorm:"not null;index"`
	UserID    int64  `gorm:"not null;index"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ReviewRow is a review joined with its author and service names.
type ReviewRow struct {
	ReviewModel
	FullName    string
	ServiceName string
}
