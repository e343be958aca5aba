package services_test

import (
	"context"
	"testing"
	"time"

	awspkg "agrodoc/pkg/aws"
	"agrodoc/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestListCSV_BucketsByDate(t *testing.T) {
	modified := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	storage := &fakeStorage{objects: []awspkg.StoredObject{
		{Key: "csv/navios/embarques_2026-02-10.csv", LastModified: modified},
		{Key: "csv/navios/embarques_2026-02-10_v2.csv", LastModified: modified},
		{Key: "csv/navios/sem_data.csv", LastModified: modified},
	}}
	svc := services.NewFilesService(storage, zap.NewNop())

	listing, serr := svc.ListCSV(context.Background(), "navios")

	assert.Nil(t, serr)
	// The ISO date in the filename wins; otherwise the upload day is used.
	assert.Equal(t, []string{"embarques_2026-02-10.csv", "embarques_2026-02-10_v2.csv"}, listing["2026-02-10"])
	assert.Equal(t, []string{"sem_data.csv"}, listing["2026-03-05"])
}

func TestListCSV_InvalidDir(t *testing.T) {
	svc := services.NewFilesService(&fakeStorage{}, zap.NewNop())

	_, serr := svc.ListCSV(context.Background(), "../secrets")

	assert.NotNil(t, serr)
	assert.Equal(t, 400, serr.StatusCode)
}

func TestListCSV_StorageError(t *testing.T) {
	svc := services.NewFilesService(&fakeStorage{listErr: assert.AnError}, zap.NewNop())

	_, serr := svc.ListCSV(context.Background(), "caminhoes")

	assert.NotNil(t, serr)
	assert.Equal(t, 500, serr.StatusCode)
}
