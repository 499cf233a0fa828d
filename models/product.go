package models

// Product is a catalog entry. The catalog is read-only to this service;
// entries are maintained directly in the external datastore.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Offers      []string `json:"offers,omitempty"`
}

type Comment struct {
	ID        string `json:"id,omitempty"`
	Author    string `json:"author,omitempty"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
}
