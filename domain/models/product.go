package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID         uint            `gorm:"primaryKey"`
	Title      string          `gorm:"size:255;not null"`
	Text       *string         `gorm:"type:text"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsActive   bool            `gorm:"default:true"`
	CategoryID *uint           `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID"`
	Tags     []Tag     `gorm:"many2many:product_tags"`
	Reviews  []Review  `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "products"
}

// TagList returns the tag names in the order the tags are attached.
func (p *Product) TagList() []string {
	names := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		names[i] = t.Name
	}
	return names
}
