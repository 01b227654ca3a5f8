package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	Title       string    `gorm:"not null"                 json:"title"`
	Description string    `gorm:"not null"                 json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Language    string    `gorm:"not null"                 json:"language"`
	Category    string    `gorm:"index;not null"           json:"category"`
	AuthorID    uuid.UUID `gorm:"type:uuid;index;not null" json:"author_id"`
	CodeContent string    `gorm:"not null"                 json:"code_content"`
	Rating      float64   `gorm:"not null;default:0"       json:"rating"`
	Downloads   int       `gorm:"not null;default:0"       json:"downloads"`
	CreatedAt   time.Time `json:"created_at"`
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null"             json:"-"`
	Reputation   int       `gorm:"not null;default:0"   json:"reputation"`
	IsVerified   bool      `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// Purchase rows are append-only. The composite unique index on
// (user_id, product_id) is what makes concurrent duplicate purchases
// lose with a constraint violation instead of double-billing.
type Purchase struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"                                   json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_purchases_user_product" json:"user_id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_purchases_user_product" json:"product_id"`
	PurchaseDate time.Time `gorm:"not null"                                               json:"purchase_date"`
	Amount       float64   `gorm:"not null"                                               json:"amount"`
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"               json:"id"`
	JTI       string    `gorm:"uniqueIndex;not null"     json:"jti"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ExpiresAt int64     `gorm:"not null"                 json:"expires_at"`
	Revoked   bool      `gorm:"not null;default:false"   json:"revoked"`
}
