package entity

import "time"

// Product is a catalog item. Photos hold the object-store URLs attached
// at creation time; there is no referential integrity enforced between
// CollectionID and the collections table.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	Photos       []string  `json:"photos"`
	Stock        int       `json:"stock"`
	Sold         int       `json:"sold"`
	CollectionID string    `json:"collection_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
