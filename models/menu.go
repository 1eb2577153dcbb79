package models

import "time"

// MenuStatus represents the moderation state of an uploaded menu
type MenuStatus string

const (
	StatusPending  MenuStatus = "PENDING"
	StatusApproved MenuStatus = "APPROVED"
	StatusRejected MenuStatus = "REJECTED"
)

// MenuSourceType describes how a menu was submitted
type MenuSourceType string

const (
	SourcePDF   MenuSourceType = "pdf"
	SourceImage MenuSourceType = "image"
	SourceURL   MenuSourceType = "url"
)

type Menu struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"index;not null"`
	Restaurant   Restaurant     `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Status       MenuStatus     `json:"status" gorm:"not null;default:'PENDING'"`
	SourceType   MenuSourceType `json:"source_type" gorm:"not null"`
	SourceURL    *string        `json:"source_url"`
	SubmittedBy  uint           `json:"submitted_by"` // user ID of the submitting owner
	Items        []MenuItem     `json:"items,omitempty" gorm:"foreignKey:MenuID"`
	UploadedAt   time.Time      `json:"uploaded_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// MenuStatusHistory tracks every moderation decision for auditing
type MenuStatusHistory struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	MenuID     uint       `json:"menu_id" gorm:"not null"`
	FromStatus MenuStatus `json:"from_status"`
	ToStatus   MenuStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint       `json:"changed_by"` // user ID who triggered the transition
	Note       string     `json:"note"`
	CreatedAt  time.Time  `json:"created_at"`
}
