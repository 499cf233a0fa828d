package models

type PaymentDetails struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	TotalPrice string `json:"totalPrice"`
	Timestamp  string `json:"timestamp"`
}

// OrderSnapshot is immutable once written. Cart holds a value copy of the
// cart at purchase time, never a reference to the live cart.
type OrderSnapshot struct {
	OrderID        string         `json:"orderId,omitempty"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
	Cart           []CartItem     `json:"cart"`
	Status         string         `json:"status"`
}

const OrderStatusPending = "Pending"
