package archive

import (
	"realestate/server/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestInsertAndRecent(t *testing.T) {
	a := setupTestArchive(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cityID := int64(5)

	events := []*models.ListingEvent{
		{Kind: models.EventPropertyCreated, PropertyID: 1, CityID: &cityID, OccurredAt: base},
		{Kind: models.EventFavoriteAdded, PropertyID: 1, OccurredAt: base.Add(time.Minute)},
		{Kind: models.EventPropertyDeleted, PropertyID: 1, CityID: &cityID, OccurredAt: base.Add(2 * time.Minute)},
	}
	err := a.DB().Transaction(func(tx *gorm.DB) error {
		return InsertEvents(tx, events)
	})
	require.NoError(t, err)
	for _, e := range events {
		assert.NotZero(t, e.ID)
	}

	recent, err := a.Recent(0, "")
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, models.EventPropertyDeleted, recent[0].Kind)
	assert.Equal(t, models.EventPropertyCreated, recent[2].Kind)
	require.NotNil(t, recent[0].CityID)
	assert.Equal(t, cityID, *recent[0].CityID)

	recent, err = a.Recent(1, "")
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	recent, err = a.Recent(10, models.EventFavoriteAdded)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, models.EventFavoriteAdded, recent[0].Kind)
}

func TestInsertEventsEmpty(t *testing.T) {
	a := setupTestArchive(t)
	assert.NoError(t, InsertEvents(a.DB(), nil))

	recent, err := a.Recent(10, "")
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestFailedTransactionWritesNothing(t *testing.T) {
	a := setupTestArchive(t)

	err := a.DB().Transaction(func(tx *gorm.DB) error {
		if err := InsertEvents(tx, []*models.ListingEvent{{Kind: models.EventInquiryCreated, PropertyID: 2, OccurredAt: time.Now()}}); err != nil {
			return err
		}
		return gorm.ErrInvalidTransaction
	})
	assert.Error(t, err)

	recent, err := a.Recent(10, "")
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestCountByKind(t *testing.T) {
	a := setupTestArchive(t)
	now := time.Now()
	require.NoError(t, InsertEvents(a.DB(), []*models.ListingEvent{
		{Kind: models.EventPropertyCreated, PropertyID: 1, OccurredAt: now},
		{Kind: models.EventPropertyCreated, PropertyID: 2, OccurredAt: now},
		{Kind: models.EventInquiryCreated, PropertyID: 2, OccurredAt: now},
	}))

	counts, err := a.CountByKind()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[models.EventPropertyCreated])
	assert.Equal(t, int64(1), counts[models.EventInquiryCreated])
	assert.Zero(t, counts[models.EventFavoriteAdded])
}
