package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/openpharma/pharmafind/internal/adapters/database"
	"github.com/openpharma/pharmafind/internal/adapters/search"
	"github.com/openpharma/pharmafind/internal/domain/entities"
	"github.com/openpharma/pharmafind/internal/infrastructure/clients/postgres"
	"github.com/openpharma/pharmafind/internal/infrastructure/clients/typesense"
	"github.com/openpharma/pharmafind/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	var searchRepo *search.TypesenseAdapter
	if err == nil {
		searchRepo = search.NewTypesenseAdapter(tsClient)
		if err := searchRepo.InitSchema(context.Background()); err != nil {
			log.Printf("Warning: failed to init Typesense schema: %v", err)
		}
	}

	pharmacyRepo := database.NewPharmacyAdapter(pgClient)
	medicineRepo := database.NewMedicineAdapter(pgClient)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				medicines,
				pharmacies
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to truncate tables: %v", err)
		}
	}

	pharmacies := []*entities.Pharmacy{
		{
			PharmacyID:  "PH-LAG-001",
			Name:        "Ikoyi Central Pharmacy",
			OwnerName:   "A. Balogun",
			Email:       "ikoyi.central@example.com",
			PhoneNumber: "+234-800-111-2222",
			Address: entities.Address{
				Street:     "12 Awolowo Road",
				City:       "Lagos",
				State:      "Lagos",
				PostalCode: "101233",
			},
			Location: entities.Location{Latitude: 6.4541, Longitude: 3.4316},
		},
		{
			PharmacyID:  "PH-LAG-002",
			Name:        "Surulere Meds",
			OwnerName:   "C. Okafor",
			Email:       "surulere.meds@example.com",
			PhoneNumber: "+234-800-333-4444",
			Address: entities.Address{
				Street:     "45 Adeniran Ogunsanya St",
				City:       "Lagos",
				State:      "Lagos",
				PostalCode: "101283",
			},
			Location: entities.Location{Latitude: 6.4926, Longitude: 3.3558},
		},
		{
			PharmacyID:  "PH-IBD-001",
			Name:        "Bodija Health Store",
			OwnerName:   "T. Adewale",
			Email:       "bodija.health@example.com",
			PhoneNumber: "+234-800-555-6666",
			Address: entities.Address{
				Street:     "3 Awolowo Avenue",
				City:       "Ibadan",
				State:      "Oyo",
				PostalCode: "200213",
			},
			Location: entities.Location{Latitude: 7.4347, Longitude: 3.9059},
		},
	}

	for _, p := range pharmacies {
		if err := pharmacyRepo.Create(ctx, p); err != nil {
			log.Printf("Skipping pharmacy %s: %v", p.PharmacyID, err)
		}
	}

	nextYear := time.Now().AddDate(1, 0, 0)
	medicines := []*entities.Medicine{
		{ID: uuid.NewString(), PharmacyID: "PH-LAG-001", MedicineName: "Paracetamol 500mg", BrandName: "Panadol", Price: 850, Stock: 120, ExpiryDate: nextYear},
		{ID: uuid.NewString(), PharmacyID: "PH-LAG-001", MedicineName: "Amoxicillin 250mg", BrandName: "Amoxil", Price: 1500, Stock: 40, ExpiryDate: nextYear},
		{ID: uuid.NewString(), PharmacyID: "PH-LAG-002", MedicineName: "Paracetamol 500mg", BrandName: "Emzor Paracetamol", Price: 700, Stock: 200, ExpiryDate: nextYear},
		{ID: uuid.NewString(), PharmacyID: "PH-LAG-002", MedicineName: "Ibuprofen 400mg", Price: 1200, Stock: 0, ExpiryDate: nextYear},
		{ID: uuid.NewString(), PharmacyID: "PH-IBD-001", MedicineName: "Paracetamol 500mg", Price: 650, Stock: 80, ExpiryDate: nextYear},
	}

	for _, m := range medicines {
		if err := medicineRepo.Create(ctx, m); err != nil {
			log.Printf("Skipping medicine %s at %s: %v", m.MedicineName, m.PharmacyID, err)
			continue
		}
		if searchRepo != nil {
			if err := searchRepo.Index(ctx, m); err != nil {
				log.Printf("Warning: failed to index %s: %v", m.MedicineName, err)
			}
		}
	}

	log.Printf("Seeded %d pharmacies and %d medicine records", len(pharmacies), len(medicines))
}
