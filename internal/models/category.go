package models

type Category struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Type      string     `gorm:"size:255;not null" json:"type"`
	Questions []Question `gorm:"foreignKey:CategoryID" json:"questions,omitempty"`
}
