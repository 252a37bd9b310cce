package models

type Review struct {
	ID        uint   `gorm:"primaryKey"`
	Text      string `gorm:"type:text;not null"`
	Stars     int    `gorm:"default:5"`
	ProductID uint   `gorm:"index;not null"`
}

func (Review) TableName() string {
	return "reviews"
}
