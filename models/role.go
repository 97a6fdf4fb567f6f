package models

import (
	"time"

	"gorm.io/gorm"
)

// Role names used throughout the transition and permission checks.
const (
	RoleCustomer = "customer"
	RoleSalesOps = "sales_ops"
	RoleAdmin    = "admin"
)

type Role struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"unique"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
	Permissions []Permission   `json:"permissions,omitempty" gorm:"many2many:role_permissions;"`
}
