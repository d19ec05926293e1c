package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(150);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ServiceModel mirrors the 'services' table.
type ServiceModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Duration    string          `gorm:"type:varchar(100)"`
	ImageURL    string          `gorm:"column:image_url;type:text"`
	CategoryID  int64           `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
