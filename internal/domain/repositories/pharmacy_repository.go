package repositories

import (
	"context"

	"github.com/openpharma/pharmafind/internal/domain/entities"
)

// PharmacyRepository defines the interface for pharmacy data operations
type PharmacyRepository interface {
	// Create creates a new pharmacy record
	Create(ctx context.Context, pharmacy *entities.Pharmacy) error

	// GetByID retrieves a pharmacy by its public identifier
	GetByID(ctx context.Context, pharmacyID string) (*entities.Pharmacy, error)

	// NearbyWithin returns the pharmacies from the given id set whose
	// great-circle distance from origin does not exceed radiusMeters,
	// sorted nearest first. Pharmacies outside the id set are never
	// returned.
	NearbyWithin(ctx context.Context, origin entities.Location, radiusMeters float64, pharmacyIDs []string) ([]entities.PharmacyDistance, error)
}
