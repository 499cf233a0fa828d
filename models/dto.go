package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type AddCartItemRequest struct {
	ID          string   `json:"id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Price       float64  `json:"price" binding:"min=0"`
	Category    string   `json:"category"`
	Offers      []string `json:"offers"`
	Quantity    int      `json:"quantity"`
}

// Quantity is a pointer so an explicit 0 passes the required check and gets
// clamped like any other value below 1.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CheckoutRequest carries the shipping form. Email is optional and only used
// for the best-effort confirmation mail.
type CheckoutRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Email      string `json:"email"`
}

type PaymentRequest struct {
	CardNumber string  `json:"cardNumber" binding:"required"`
	Expiry     string  `json:"expiry" binding:"required"`
	CVV        string  `json:"cvv" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
}
