package models

import (
	"time"

	"gorm.io/gorm"
)

type MenuCategory struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name      string `gorm:"size:150" json:"name"`
	SortOrder int    `gorm:"column:sort_order;default:0" json:"sortOrder"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items"`
}

type MenuItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CategoryID  uint    `gorm:"index;column:category_id" json:"categoryId"`
	Name        string  `gorm:"size:150" json:"name"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	Price       float64 `json:"price"`
	Available   bool    `gorm:"default:true" json:"available"`
}
