package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
	"github.com/openpharma/pharmafind/internal/domain/entities"
	"github.com/openpharma/pharmafind/internal/domain/repositories"
	"github.com/openpharma/pharmafind/internal/infrastructure/clients/postgres"
	apperrors "github.com/openpharma/pharmafind/pkg/errors"
)

// PharmacyAdapter implements the PharmacyRepository interface
type PharmacyAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPharmacyAdapter creates a new pharmacy adapter
func NewPharmacyAdapter(client *postgres.Client) repositories.PharmacyRepository {
	return &PharmacyAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new pharmacy record
func (a *PharmacyAdapter) Create(ctx context.Context, pharmacy *entities.Pharmacy) error {
	now := time.Now()
	if pharmacy.CreatedAt.IsZero() {
		pharmacy.CreatedAt = now
	}
	pharmacy.UpdatedAt = now

	record := goqu.Record{
		"pharmacy_id":  pharmacy.PharmacyID,
		"name":         pharmacy.Name,
		"owner_name":   sql.NullString{String: pharmacy.OwnerName, Valid: pharmacy.OwnerName != ""},
		"email":        sql.NullString{String: pharmacy.Email, Valid: pharmacy.Email != ""},
		"phone_number": sql.NullString{String: pharmacy.PhoneNumber, Valid: pharmacy.PhoneNumber != ""},
		"street":       sql.NullString{String: pharmacy.Address.Street, Valid: pharmacy.Address.Street != ""},
		"city":         sql.NullString{String: pharmacy.Address.City, Valid: pharmacy.Address.City != ""},
		"state":        sql.NullString{String: pharmacy.Address.State, Valid: pharmacy.Address.State != ""},
		"postal_code":  sql.NullString{String: pharmacy.Address.PostalCode, Valid: pharmacy.Address.PostalCode != ""},
		"latitude":     pharmacy.Location.Latitude,
		"longitude":    pharmacy.Location.Longitude,
		"created_at":   pharmacy.CreatedAt,
		"updated_at":   pharmacy.UpdatedAt,
	}

	query, args, err := a.db.Insert("pharmacies").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create pharmacy", err)
	}

	return nil
}

// GetByID retrieves a pharmacy by its public identifier
func (a *PharmacyAdapter) GetByID(ctx context.Context, pharmacyID string) (*entities.Pharmacy, error) {
	query, args, err := a.db.Select(
		"pharmacy_id", "name", "owner_name", "email", "phone_number",
		"street", "city", "state", "postal_code",
		"latitude", "longitude", "created_at", "updated_at",
	).From("pharmacies").
		Where(goqu.Ex{"pharmacy_id": pharmacyID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	pharmacy := &entities.Pharmacy{}
	var owner, email, phone, street, city, state, postalCode sql.NullString

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&pharmacy.PharmacyID,
		&pharmacy.Name,
		&owner,
		&email,
		&phone,
		&street,
		&city,
		&state,
		&postalCode,
		&pharmacy.Location.Latitude,
		&pharmacy.Location.Longitude,
		&pharmacy.CreatedAt,
		&pharmacy.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("pharmacy with id %s not found", pharmacyID))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get pharmacy", err)
	}

	pharmacy.OwnerName = owner.String
	pharmacy.Email = email.String
	pharmacy.PhoneNumber = phone.String
	pharmacy.Address = entities.Address{
		Street:     street.String,
		City:       city.String,
		State:      state.String,
		PostalCode: postalCode.String,
	}

	return pharmacy, nil
}

// NearbyWithin returns pharmacies from the id set within radiusMeters of
// origin, nearest first. Distance is the great-circle (haversine) distance
// computed in the database, in meters.
func (a *PharmacyAdapter) NearbyWithin(ctx context.Context, origin entities.Location, radiusMeters float64, pharmacyIDs []string) ([]entities.PharmacyDistance, error) {
	if len(pharmacyIDs) == 0 {
		return []entities.PharmacyDistance{}, nil
	}

	query := `
		SELECT pharmacy_id, name, street, city, state, postal_code,
		       latitude, longitude, distance_m
		FROM (
			SELECT pharmacy_id, name, street, city, state, postal_code,
			       latitude, longitude,
			       (6371000 * acos(least(1.0,
			           cos(radians($1)) * cos(radians(latitude)) *
			           cos(radians(longitude) - radians($2)) +
			           sin(radians($1)) * sin(radians(latitude))
			       ))) AS distance_m
			FROM pharmacies
			WHERE pharmacy_id = ANY($3)
		) nearby
		WHERE distance_m <= $4
		ORDER BY distance_m
	`

	rows, err := a.client.DB().QueryContext(ctx, query,
		origin.Latitude,
		origin.Longitude,
		pq.Array(pharmacyIDs),
		radiusMeters,
	)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query nearby pharmacies", err)
	}
	defer rows.Close()

	results := []entities.PharmacyDistance{}
	for rows.Next() {
		pharmacy := &entities.Pharmacy{}
		var street, city, state, postalCode sql.NullString
		var distanceMeters float64

		err := rows.Scan(
			&pharmacy.PharmacyID,
			&pharmacy.Name,
			&street,
			&city,
			&state,
			&postalCode,
			&pharmacy.Location.Latitude,
			&pharmacy.Location.Longitude,
			&distanceMeters,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan pharmacy", err)
		}

		pharmacy.Address = entities.Address{
			Street:     street.String,
			City:       city.String,
			State:      state.String,
			PostalCode: postalCode.String,
		}

		results = append(results, entities.PharmacyDistance{
			Pharmacy:       pharmacy,
			DistanceMeters: distanceMeters,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating pharmacies", err)
	}

	return results, nil
}
