package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/openpharma/pharmafind/internal/domain/entities"
	"github.com/openpharma/pharmafind/internal/domain/repositories"
	"github.com/openpharma/pharmafind/internal/infrastructure/clients/postgres"
	apperrors "github.com/openpharma/pharmafind/pkg/errors"
)

// MedicineAdapter implements the MedicineRepository interface
type MedicineAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewMedicineAdapter creates a new medicine adapter
func NewMedicineAdapter(client *postgres.Client) repositories.MedicineRepository {
	return &MedicineAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new medicine stock record
func (a *MedicineAdapter) Create(ctx context.Context, medicine *entities.Medicine) error {
	if medicine.LastUpdated.IsZero() {
		medicine.LastUpdated = time.Now()
	}

	record := goqu.Record{
		"id":            medicine.ID,
		"pharmacy_id":   medicine.PharmacyID,
		"medicine_name": medicine.MedicineName,
		"brand_name":    sql.NullString{String: medicine.BrandName, Valid: medicine.BrandName != ""},
		"price":         medicine.Price,
		"stock":         medicine.Stock,
		"expiry_date":   medicine.ExpiryDate,
		"last_updated":  medicine.LastUpdated,
	}

	query, args, err := a.db.Insert("medicines").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create medicine", err)
	}

	return nil
}

// ListByPharmacy retrieves all stock records for one pharmacy
func (a *MedicineAdapter) ListByPharmacy(ctx context.Context, pharmacyID string) ([]*entities.Medicine, error) {
	query, args, err := a.selectColumns().
		Where(goqu.Ex{"pharmacy_id": pharmacyID}).
		Order(goqu.C("medicine_name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryMedicines(ctx, query, args)
}

// FindAvailable returns stock records matching the medicine name that are
// in stock and not expired. Matching is a case-insensitive substring match
// so "paracetamol" also matches "Paracetamol 500mg". The order is stable
// (latest expiry first, then id) so downstream merge decisions are
// deterministic.
func (a *MedicineAdapter) FindAvailable(ctx context.Context, medicineName string) ([]*entities.Medicine, error) {
	query, args, err := a.selectColumns().
		Where(
			goqu.C("medicine_name").ILike("%"+medicineName+"%"),
			goqu.C("stock").Gt(0),
			goqu.C("expiry_date").Gte(goqu.L("now()")),
		).
		Order(goqu.C("expiry_date").Desc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryMedicines(ctx, query, args)
}

func (a *MedicineAdapter) selectColumns() *goqu.SelectDataset {
	return a.db.Select(
		"id", "pharmacy_id", "medicine_name", "brand_name",
		"price", "stock", "expiry_date", "last_updated",
	).From("medicines")
}

func (a *MedicineAdapter) queryMedicines(ctx context.Context, query string, args []interface{}) ([]*entities.Medicine, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query medicines", err)
	}
	defer rows.Close()

	medicines := []*entities.Medicine{}
	for rows.Next() {
		medicine := &entities.Medicine{}
		var brand sql.NullString

		err := rows.Scan(
			&medicine.ID,
			&medicine.PharmacyID,
			&medicine.MedicineName,
			&brand,
			&medicine.Price,
			&medicine.Stock,
			&medicine.ExpiryDate,
			&medicine.LastUpdated,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan medicine", err)
		}

		medicine.BrandName = brand.String
		medicines = append(medicines, medicine)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating medicines", err)
	}

	return medicines, nil
}
