package models

import (
	"gorm.io/gorm"
)

type PropertyRequestStatus string

const (
	RequestOpen    PropertyRequestStatus = "open"
	RequestMatched PropertyRequestStatus = "matched"
	RequestClosed  PropertyRequestStatus = "closed"
)

// PropertyRequest is a customer's "find me a property" ticket, worked by the
// sales ops team until a matching listing is found or the request is closed.
type PropertyRequest struct {
	gorm.Model
	UserID       uint                  `json:"user_id"`
	User         User                  `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	PropertyType string                `json:"property_type"`
	Location     string                `json:"location"`
	MinPrice     float64               `json:"min_price"`
	MaxPrice     float64               `json:"max_price"`
	Bedrooms     int                   `json:"bedrooms"`
	Bathrooms    int                   `json:"bathrooms"`
	MinArea      float64               `json:"min_area"`
	Notes        string                `json:"notes"`
	Status       PropertyRequestStatus `json:"status"`
}

func (r *PropertyRequest) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = RequestOpen
	}
	return nil
}
