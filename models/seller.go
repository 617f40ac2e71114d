package models

import "time"

// Seller is the authenticated seller identity. One record per account; the
// session token references it by ID.
type Seller struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Name      string `json:"name"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	StoreName string `json:"storeName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SellerProduct is a listing managed from the seller panel, separate from the
// static storefront catalog.
type SellerProduct struct {
	ID        string `gorm:"primaryKey" json:"id"`
	SellerID  string `gorm:"index" json:"seller_id"`
	Name      string `gorm:"not null" json:"name"`
	Category  string `json:"category"`
	Price     int    `json:"price"`
	Stock     int    `json:"stock"`
	Image     string `json:"image"`
	Status    string `gorm:"type:VARCHAR(10);default:'active'" json:"status"` // active | inactive
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
