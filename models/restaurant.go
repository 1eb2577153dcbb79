package models

import "time"

type Restaurant struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Slug       string    `json:"slug" gorm:"uniqueIndex;not null"`
	Name       string    `json:"name" gorm:"not null"`
	City       string    `json:"city" gorm:"index;not null"`
	Address    *string   `json:"address"`
	WebsiteURL *string   `json:"website_url"`
	Verified   bool      `json:"verified" gorm:"default:false"`
	Lat        *float64  `json:"lat"`
	Lon        *float64  `json:"lon"`
	Menus      []Menu    `json:"menus,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MenuID      uint      `json:"menu_id" gorm:"index;not null"`
	Menu        Menu      `json:"menu,omitempty" gorm:"foreignKey:MenuID"`
	Slug        string    `json:"slug" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description"`
	Section     string    `json:"section"`
	Tags        []string  `json:"tags" gorm:"serializer:json"`
	PriceCents  *int      `json:"price_cents"` // minor units; nil when the menu lists no price
	CreatedAt   time.Time `json:"created_at"`
}
