package models

import (
	"time"

	"gorm.io/datatypes"
)

type ServiceProvider struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;index" json:"name"`
	Category    string         `gorm:"size:100;index" json:"category"`
	Description string         `gorm:"type:text" json:"description"`
	Latitude    float64        `gorm:"not null" json:"latitude"`
	Longitude   float64        `gorm:"not null" json:"longitude"`
	Phone       string         `gorm:"size:50" json:"phone,omitempty"`
	Email       string         `gorm:"size:100" json:"email,omitempty"`
	Website     string         `gorm:"size:255" json:"website,omitempty"`
	Address     string         `gorm:"size:255" json:"address,omitempty"`
	Photo       string         `gorm:"size:500" json:"photo,omitempty"`
	Tags        datatypes.JSON `json:"tags,omitempty"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
