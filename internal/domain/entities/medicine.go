package entities

import "time"

// Medicine represents a stock record for one medicine at one pharmacy.
// A pharmacy carries many medicine records. Inventory-management
// collaborators mutate these; the search pipeline only reads them.
type Medicine struct {
	ID           string    `json:"id" db:"id"`
	PharmacyID   string    `json:"pharmacy_id" db:"pharmacy_id"`
	MedicineName string    `json:"medicine_name" db:"medicine_name"`
	BrandName    string    `json:"brand_name,omitempty" db:"brand_name"`
	Price        float64   `json:"price" db:"price"`
	Stock        int       `json:"stock" db:"stock"`
	ExpiryDate   time.Time `json:"expiry_date" db:"expiry_date"`
	LastUpdated  time.Time `json:"last_updated" db:"last_updated"`
}

// IsAvailable reports whether the record qualifies for search results:
// positive stock and not expired as of now.
func (m *Medicine) IsAvailable(now time.Time) bool {
	return m.Stock > 0 && !m.ExpiryDate.Before(now)
}
