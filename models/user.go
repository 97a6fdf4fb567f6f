package models

import (
	"time"
)

type User struct {
	ID               uint               `json:"id" gorm:"primaryKey"`
	Name             string             `json:"name"`
	Email            string             `json:"email" gorm:"unique"`
	Phone            string             `json:"phone"`
	Password         string             `json:"password,omitempty"`
	IsVerified       bool               `json:"is_verified"`
	RoleID           uint               `json:"role_id"`
	Role             Role               `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Viewings         []ScheduledViewing `json:"viewings,omitempty" gorm:"foreignKey:UserID"`
	PropertyRequests []PropertyRequest  `json:"property_requests,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
