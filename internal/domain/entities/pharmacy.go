package entities

import "time"

// Pharmacy represents a registered pharmacy. Records are created by the
// account-management collaborator; this service only reads them.
type Pharmacy struct {
	PharmacyID  string    `json:"pharmacy_id" db:"pharmacy_id"`
	Name        string    `json:"name" db:"name"`
	OwnerName   string    `json:"owner_name,omitempty" db:"owner_name"`
	Email       string    `json:"email,omitempty" db:"email"`
	PhoneNumber string    `json:"phone_number,omitempty" db:"phone_number"`
	Address     Address   `json:"address" db:"-"`
	Location    Location  `json:"location" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Address represents a physical address
type Address struct {
	Street     string `json:"street" db:"street"`
	City       string `json:"city" db:"city"`
	State      string `json:"state" db:"state"`
	PostalCode string `json:"postal_code" db:"postal_code"`
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// PharmacyDistance pairs a pharmacy with its great-circle distance from a
// search origin, in meters.
type PharmacyDistance struct {
	Pharmacy       *Pharmacy
	DistanceMeters float64
}
