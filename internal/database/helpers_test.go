package database

import (
	"realestate/server/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stepClock advances by step on every call so records get distinct,
// increasing timestamps
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newTestDB() *Database {
	clock := &stepClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: time.Second}
	return NewDatabase(WithClock(clock.Now))
}

func ptr[T any](v T) *T {
	return &v
}

func propertyInput(cityID, ownerID int64, price int64, area int) models.PropertyInput {
	return models.PropertyInput{
		Title:        "Test Property",
		Description:  "A test listing",
		PropertyType: models.PropertyTypeApartment,
		ListingType:  models.ListingTypeSale,
		Price:        price,
		Bedrooms:     ptr(2),
		Bathrooms:    ptr(2),
		AreaSqft:     area,
		Address:      "Test Road",
		LocalityID:   1,
		CityID:       cityID,
		State:        "Maharashtra",
		OwnerID:      ownerID,
		Amenities:    []string{"Lift"},
		Images:       []string{"https://example.com/1.jpg"},
	}
}

func createUser(t *testing.T, db *Database, username string) models.User {
	t.Helper()
	u, err := db.CreateUser(models.UserInput{
		Username: username,
		Password: "password123",
		Email:    username + "@example.com",
		Name:     username,
	})
	require.NoError(t, err)
	return u
}

func ids(props []models.Property) []int64 {
	out := make([]int64, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}
