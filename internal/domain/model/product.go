package model

import (
	"time"

	"gorm.io/gorm"
)

// 商品。ブランド集計（product_count）のJOIN先になる。
type Product struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID   int64          `gorm:"not null;index" json:"brand_id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	IsActive  bool           `gorm:"not null;default:false" json:"is_active"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
