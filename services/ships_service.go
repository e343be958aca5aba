package services

import (
	"context"
	"time"

	"agrodoc/models"
	"agrodoc/repository"

	"go.uber.org/zap"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// ShipsService defines the business logic interface for ship listings.
type ShipsService interface {
	ListByMonth(ctx context.Context, year, month int) (models.ShipsByDate, *ServiceError)
	AvailableDates(ctx context.Context) ([]string, *ServiceError)
}

type shipsServiceImpl struct {
	repo   repository.ShipRepository
	logger *zap.Logger
}

// NewShipsService creates a new ShipsService.
func NewShipsService(repo repository.ShipRepository, logger *zap.Logger) ShipsService {
	return &shipsServiceImpl{repo: repo, logger: logger}
}

// ListByMonth fetches every ship row inside the calendar month and groups the
// normalized records by their grouping date key.
func (s *shipsServiceImpl) ListByMonth(ctx context.Context, year, month int) (models.ShipsByDate, *ServiceError) {
	if month < 1 || month > 12 {
		return nil, &ServiceError{StatusCode: 400, Message: "month must be between 1 and 12"}
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the following month is the last day of this one.
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)

	rows, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		s.logger.Error("Failed to query ship rows", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load ship records"}
	}

	grouped := make(models.ShipsByDate)
	for _, row := range rows {
		key := row.Date.Format("2006-01-02")
		record := s.normalizeRow(row, key)
		grouped[key] = append(grouped[key], record)
	}

	return grouped, nil
}

// AvailableDates returns every distinct grouping date, newest first.
func (s *shipsServiceImpl) AvailableDates(ctx context.Context) ([]string, *ServiceError) {
	dates, err := s.repo.DistinctDates(ctx)
	if err != nil {
		s.logger.Error("Failed to query distinct dates", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load available dates"}
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return out, nil
}

// normalizeRow projects a stored row into its canonical-scale record. Every
// row present in the query result is kept: coercion failures degrade to
// nil/0, never an error.
func (s *shipsServiceImpl) normalizeRow(row models.ShipRow, dateKey string) models.ShipRecord {
	quantityRaw := ToNumberOrNull(row.Quantity)
	record := models.ShipRecord{
		ID:            row.ID.String(),
		VesselName:    row.VesselName,
		ProcessCode:   row.ProcessCode,
		QuantityTons:  NormalizeTonnage(quantityRaw),
		Destination:   row.Destination,
		DepartureDate: row.DepartureDate,
		LotNumber:     ToNumberOrNull(row.LotNumber),
		PermitNumber:  ToNumberOrNull(row.PermitNumber),
		ContractValue: NormalizeScale(ToNumberOrNull(row.ContractValue)),
		FreightValue:  NormalizeScale(ToNumberOrNull(row.FreightValue)),
		Date:          dateKey,
	}
	if record.DepartureDate == "" {
		record.DepartureDate = dateKey
	}

	s.logger.Debug("ship row normalized",
		zap.String("vessel", row.VesselName),
		zap.String("raw_quantity", row.Quantity),
		zap.Float64("quantity_tons", record.QuantityTons),
		zap.String("raw_contract_value", row.ContractValue),
		zap.String("raw_freight_value", row.FreightValue),
	)

	return record
}
