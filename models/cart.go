package models

// CartItem mirrors the product entry frozen into a cart. Field names follow
// the Realtime Database document layout, so one struct serves the catalog
// read, the live cart and the order snapshot.
type CartItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Offers      []string `json:"offers,omitempty"`
	Quantity    int      `json:"quantity"`
}
