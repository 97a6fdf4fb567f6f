package models

import (
	"gorm.io/gorm"
)

type Property struct {
	gorm.Model
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	PropertyType string  `json:"property_type"` // e.g., "apartment", "villa", "townhouse"
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	Area         float64 `json:"area"` // square meters
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	Available    bool    `json:"available" gorm:"default:true"`
	CreatedByID  uint    `json:"created_by_id"`
	CreatedBy    User    `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}
