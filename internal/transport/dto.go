package transport

import "github.com/google/uuid"

type CreateProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Language    string  `json:"language"`
	Category    string  `json:"category"`
	CodeContent string  `json:"code_content"`
}

type PurchaseRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	// Amount is optional; when present it must match the product's
	// current price exactly.
	Amount *float64 `json:"amount,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ProfileStats struct {
	TotalProducts  int64   `json:"total_products"`
	TotalPurchases int64   `json:"total_purchases"`
	TotalEarnings  float64 `json:"total_earnings"`
	AverageRating  float64 `json:"average_rating"`
}
