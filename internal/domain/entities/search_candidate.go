package entities

import "time"

// SearchCandidate is the merged pharmacy + medicine payload returned to the
// caller. It exists only for the duration of one search request and is
// never persisted.
type SearchCandidate struct {
	PharmacyID   string    `json:"pharmacy_id"`
	Name         string    `json:"name"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	DistanceKm   float64   `json:"distance_km"`
	MedicineName string    `json:"medicine_name"`
	BrandName    string    `json:"brand_name,omitempty"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	ExpiryDate   time.Time `json:"expiry_date"`
	AIScore      float64   `json:"ai_score"`

	// distanceMeters keeps the unrounded value for sorting; DistanceKm is
	// the two-decimal presentation value.
	distanceMeters float64
}

// SetDistanceMeters records the exact distance and derives the rounded
// kilometer value exposed in responses.
func (c *SearchCandidate) SetDistanceMeters(meters float64) {
	c.distanceMeters = meters
	c.DistanceKm = roundTo2(meters / 1000)
}

// DistanceMeters returns the unrounded distance used for ranking.
func (c *SearchCandidate) DistanceMeters() float64 {
	return c.distanceMeters
}

func roundTo2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
