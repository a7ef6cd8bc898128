package search

import (
	"context"
	"fmt"
	"time"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/openpharma/pharmafind/internal/domain/entities"
	"github.com/openpharma/pharmafind/internal/domain/repositories"
	tsclient "github.com/openpharma/pharmafind/internal/infrastructure/clients/typesense"
)

const collectionName = "medicines"

// TypesenseAdapter implements medicine stock search using Typesense

type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements MedicineSearchRepository
var _ repositories.MedicineSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil // Collection exists
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "pharmacy_id", Type: "string"},
			{Name: "medicine_name", Type: "string"},
			{Name: "brand_name", Type: "string", Optional: pointer.True()},
			{Name: "price", Type: "float"},
			{Name: "stock", Type: "int32"},
			{Name: "expiry_date", Type: "int64"},
			{Name: "last_updated", Type: "int64"},
		},
		DefaultSortingField: pointer.String("last_updated"),
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}

	return nil
}

// Index indexes a stock record
func (a *TypesenseAdapter) Index(ctx context.Context, medicine *entities.Medicine) error {
	document := map[string]interface{}{
		"id":            medicine.ID,
		"pharmacy_id":   medicine.PharmacyID,
		"medicine_name": medicine.MedicineName,
		"brand_name":    medicine.BrandName,
		"price":         medicine.Price,
		"stock":         medicine.Stock,
		"expiry_date":   medicine.ExpiryDate.Unix(),
		"last_updated":  medicine.LastUpdated.Unix(),
	}

	_, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index medicine: %w", err)
	}

	return nil
}

// Delete removes a stock record from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(collectionName).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete medicine from index: %w", err)
	}
	return nil
}

// FindAvailable searches available stock records by medicine name. The
// availability predicate (stock > 0, not expired) is pushed into the
// filter so the index never returns records the database filter would
// reject.
func (a *TypesenseAdapter) FindAvailable(ctx context.Context, medicineName string) ([]*entities.Medicine, error) {
	searchParams := &api.SearchCollectionParams{
		Q:        pointer.String(medicineName),
		QueryBy:  pointer.String("medicine_name,brand_name"),
		FilterBy: pointer.String(fmt.Sprintf("stock:>0 && expiry_date:>=%d", time.Now().Unix())),
		SortBy:   pointer.String("expiry_date:desc"),
		PerPage:  pointer.Int(250),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search medicines: %w", err)
	}

	medicines := []*entities.Medicine{}
	if result.Hits == nil {
		return medicines, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		doc := *hit.Document

		medicine := &entities.Medicine{
			ID:           stringField(doc, "id"),
			PharmacyID:   stringField(doc, "pharmacy_id"),
			MedicineName: stringField(doc, "medicine_name"),
			BrandName:    stringField(doc, "brand_name"),
			Price:        floatField(doc, "price"),
			Stock:        int(floatField(doc, "stock")),
			ExpiryDate:   time.Unix(int64(floatField(doc, "expiry_date")), 0),
			LastUpdated:  time.Unix(int64(floatField(doc, "last_updated")), 0),
		}
		medicines = append(medicines, medicine)
	}

	return medicines, nil
}

func stringField(doc map[string]interface{}, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func floatField(doc map[string]interface{}, key string) float64 {
	switch v := doc[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}
