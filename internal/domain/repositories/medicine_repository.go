package repositories

import (
	"context"

	"github.com/openpharma/pharmafind/internal/domain/entities"
)

// MedicineRepository defines the interface for medicine stock operations
type MedicineRepository interface {
	// Create creates a new medicine stock record
	Create(ctx context.Context, medicine *entities.Medicine) error

	// ListByPharmacy retrieves all stock records for one pharmacy
	ListByPharmacy(ctx context.Context, pharmacyID string) ([]*entities.Medicine, error)

	// FindAvailable returns records whose medicine_name matches the query
	// (case-insensitive substring), with positive stock and an expiry date
	// not in the past. An empty slice means no matches, not an error.
	// Order is stable: latest expiry first, then record id.
	FindAvailable(ctx context.Context, medicineName string) ([]*entities.Medicine, error)
}

// MedicineSearchRepository defines the interface for medicine search via a
// dedicated search engine (e.g. Typesense). Implementations apply the same
// availability predicate as MedicineRepository.FindAvailable.
type MedicineSearchRepository interface {
	// FindAvailable searches available stock records by medicine name
	FindAvailable(ctx context.Context, medicineName string) ([]*entities.Medicine, error)

	// Index indexes a stock record
	Index(ctx context.Context, medicine *entities.Medicine) error

	// Delete removes a stock record from the index
	Delete(ctx context.Context, id string) error
}
