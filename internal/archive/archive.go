package archive

import (
	"fmt"
	"realestate/server/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DefaultRecentLimit = 50
	insertBatchSize    = 100
)

// Archive is an append-only SQLite log of listing activity. It is never
// read back into the catalog.
type Archive struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// Open connects to the SQLite database at path and migrates the schema.
// Use ":memory:" for a throwaway archive.
func Open(path string, log *logrus.Logger) (*Archive, error) {
	if log == nil {
		log = logrus.New()
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get archive connection: %w", err)
	}
	// an in-memory database lives and dies with its connection
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.ListingEvent{}); err != nil {
		return nil, fmt.Errorf("failed to migrate archive: %w", err)
	}

	log.WithField("path", path).Info("Activity archive ready")
	return &Archive{db: db, logger: log}, nil
}

// DB exposes the connection for transactional writers
func (a *Archive) DB() *gorm.DB {
	return a.db
}

// InsertEvents writes events inside tx
func InsertEvents(tx *gorm.DB, events []*models.ListingEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(events, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert events: %w", err)
	}
	return nil
}

// Recent returns the newest events, optionally of a single kind
func (a *Archive) Recent(limit int, kind models.EventKind) ([]models.ListingEvent, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	query := a.db.Order("occurred_at DESC").Order("id DESC").Limit(limit)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	events := make([]models.ListingEvent, 0)
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return events, nil
}

// CountByKind tallies archived events per kind
func (a *Archive) CountByKind() (map[models.EventKind]int64, error) {
	var rows []struct {
		Kind  models.EventKind
		Total int64
	}
	err := a.db.Model(&models.ListingEvent{}).
		Select("kind, COUNT(*) AS total").
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	counts := make(map[models.EventKind]int64, len(rows))
	for _, r := range rows {
		counts[r.Kind] = r.Total
	}
	return counts, nil
}

func (a *Archive) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
