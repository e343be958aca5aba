package services_test

import (
	"context"
	"testing"
	"time"

	"agrodoc/models"
	"agrodoc/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeShipRepo struct {
	rows      []models.ShipRow
	dates     []time.Time
	err       error
	gotStart  time.Time
	gotEnd    time.Time
	datesErr  error
	rangeCall int
}

func (f *fakeShipRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.ShipRow, error) {
	f.rangeCall++
	f.gotStart = start
	f.gotEnd = end
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeShipRepo) DistinctDates(ctx context.Context) ([]time.Time, error) {
	if f.datesErr != nil {
		return nil, f.datesErr
	}
	return f.dates, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestListByMonth_Range(t *testing.T) {
	repo := &fakeShipRepo{}
	svc := services.NewShipsService(repo, zap.NewNop())

	_, serr := svc.ListByMonth(context.Background(), 2026, 2)

	assert.Nil(t, serr)
	assert.Equal(t, day(2026, time.February, 1), repo.gotStart)
	assert.Equal(t, day(2026, time.February, 28), repo.gotEnd)
}

func TestListByMonth_LeapYearRange(t *testing.T) {
	repo := &fakeShipRepo{}
	svc := services.NewShipsService(repo, zap.NewNop())

	_, serr := svc.ListByMonth(context.Background(), 2024, 2)

	assert.Nil(t, serr)
	assert.Equal(t, day(2024, time.February, 29), repo.gotEnd)
}

func TestListByMonth_InvalidMonth(t *testing.T) {
	repo := &fakeShipRepo{}
	svc := services.NewShipsService(repo, zap.NewNop())

	_, serr := svc.ListByMonth(context.Background(), 2026, 13)

	assert.NotNil(t, serr)
	assert.Equal(t, 400, serr.StatusCode)
	assert.Zero(t, repo.rangeCall)
}

func TestListByMonth_Normalization(t *testing.T) {
	repo := &fakeShipRepo{
		rows: []models.ShipRow{
			{
				ID:            uuid.New(),
				VesselName:    "MV Ceres",
				Quantity:      "2500000", // kilograms
				ContractValue: "12345678",
				FreightValue:  "n/a",
				LotNumber:     "4411",
				Date:          day(2026, time.February, 10),
			},
			{
				ID:         uuid.New(),
				VesselName: "MV Demeter",
				Quantity:   "", // missing
				Date:       day(2026, time.February, 10),
			},
		},
	}
	svc := services.NewShipsService(repo, zap.NewNop())

	grouped, serr := svc.ListByMonth(context.Background(), 2026, 2)

	assert.Nil(t, serr)
	records := grouped["2026-02-10"]
	assert.Len(t, records, 2)

	ceres := records[0]
	assert.Equal(t, 2500.0, ceres.QuantityTons)
	assert.InDelta(t, 123.45678, *ceres.ContractValue, 1e-9)
	assert.Nil(t, ceres.FreightValue)
	assert.Equal(t, 4411.0, *ceres.LotNumber)
	// Empty departure date falls back to the grouping key.
	assert.Equal(t, "2026-02-10", ceres.DepartureDate)

	demeter := records[1]
	assert.Equal(t, float64(0), demeter.QuantityTons)
}

func TestListByMonth_RepoError(t *testing.T) {
	repo := &fakeShipRepo{err: assert.AnError}
	svc := services.NewShipsService(repo, zap.NewNop())

	_, serr := svc.ListByMonth(context.Background(), 2026, 2)

	assert.NotNil(t, serr)
	assert.Equal(t, 500, serr.StatusCode)
}

func TestAvailableDates(t *testing.T) {
	repo := &fakeShipRepo{dates: []time.Time{
		day(2026, time.March, 2),
		day(2026, time.February, 10),
	}}
	svc := services.NewShipsService(repo, zap.NewNop())

	dates, serr := svc.AvailableDates(context.Background())

	assert.Nil(t, serr)
	assert.Equal(t, []string{"2026-03-02", "2026-02-10"}, dates)
}

func TestAvailableDates_RepoError(t *testing.T) {
	repo := &fakeShipRepo{datesErr: assert.AnError}
	svc := services.NewShipsService(repo, zap.NewNop())

	_, serr := svc.AvailableDates(context.Background())

	assert.NotNil(t, serr)
	assert.Equal(t, 500, serr.StatusCode)
}
