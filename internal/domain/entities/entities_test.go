package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMedicineIsAvailable(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		medicine Medicine
		want     bool
	}{
		{"in stock and unexpired", Medicine{Stock: 5, ExpiryDate: now.AddDate(1, 0, 0)}, true},
		{"zero stock", Medicine{Stock: 0, ExpiryDate: now.AddDate(1, 0, 0)}, false},
		{"expired", Medicine{Stock: 5, ExpiryDate: now.AddDate(0, 0, -1)}, false},
		{"expires today", Medicine{Stock: 5, ExpiryDate: now}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.medicine.IsAvailable(now))
		})
	}
}

func TestSearchCandidateDistance(t *testing.T) {
	c := &SearchCandidate{}
	c.SetDistanceMeters(2567)

	// Presentation value rounds to two decimals; ranking keeps the exact
	// distance.
	assert.Equal(t, 2.57, c.DistanceKm)
	assert.Equal(t, 2567.0, c.DistanceMeters())

	c.SetDistanceMeters(0)
	assert.Equal(t, 0.0, c.DistanceKm)
}
