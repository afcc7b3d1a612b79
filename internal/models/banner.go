package models

import "time"

// Banner is a promotional banner shown on the storefront home screen.
type Banner struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title     string    `json:"title" validate:"required,min=1,max=150"`
	Discount  string    `json:"discount"` // free-text label, e.g. "30% OFF"
	ImageURL  string    `json:"image_url" validate:"required,url"`
	CreatedAt time.Time `json:"created_at"`
}
