package repository

import (
	"context"
	"time"

	"agrodoc/models"

	"gorm.io/gorm"
)

// ShipRepository defines data-access operations for ship schedules.
type ShipRepository interface {
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.ShipRow, error)
	DistinctDates(ctx context.Context) ([]time.Time, error)
}

// GormShipRepository implements ShipRepository using GORM.
type GormShipRepository struct {
	db *gorm.DB
}

// NewGormShipRepository creates a new GormShipRepository.
func NewGormShipRepository(db *gorm.DB) ShipRepository {
	return &GormShipRepository{db: db}
}

// FindByDateRange returns every row whose grouping date falls inside
// [start, end], newest date first.
func (r *GormShipRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.ShipRow, error) {
	var rows []models.ShipRow
	if err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DistinctDates returns every distinct grouping date, newest first.
func (r *GormShipRepository) DistinctDates(ctx context.Context) ([]time.Time, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).
		Model(&models.ShipRow{}).
		Distinct("date").
		Order("date DESC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}
