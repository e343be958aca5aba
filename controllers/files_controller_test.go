package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrodoc/controllers"
	"agrodoc/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeFilesService struct {
	listings map[string]map[string][]string
	err      *services.ServiceError
	gotDirs  []string
}

func (f *fakeFilesService) ListCSV(ctx context.Context, dir string) (map[string][]string, *services.ServiceError) {
	f.gotDirs = append(f.gotDirs, dir)
	if f.err != nil {
		return nil, f.err
	}
	return f.listings[dir], nil
}

func newFilesRouter(svc services.FilesService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	fc := controllers.NewFilesController(svc, controllers.NewCacheManager(nil))
	r := gin.New()
	r.GET("/api/list-csv", fc.ListCSV)
	r.GET("/api/list-csv-embarque", fc.ListCSVEmbarque)
	return r
}

func TestListCSV_WrapsInData(t *testing.T) {
	svc := &fakeFilesService{listings: map[string]map[string][]string{
		"caminhoes": {"2026-02-10": {"notas.csv"}},
	}}
	r := newFilesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/list-csv", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"caminhoes"}, svc.gotDirs)
	assert.JSONEq(t, `{"data":{"2026-02-10":["notas.csv"]}}`, w.Body.String())
}

func TestListCSV_ErrorKeepsDataKey(t *testing.T) {
	svc := &fakeFilesService{err: &services.ServiceError{StatusCode: 500, Message: "Failed to list stored files"}}
	r := newFilesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/list-csv", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"data":{}`)
	assert.Contains(t, w.Body.String(), "error")
}

func TestListCSVEmbarque_ReturnsMappingDirectly(t *testing.T) {
	svc := &fakeFilesService{listings: map[string]map[string][]string{
		"navios": {"2026-02-10": {"embarques.csv"}},
	}}
	r := newFilesRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/list-csv-embarque", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"navios"}, svc.gotDirs)
	assert.JSONEq(t, `{"2026-02-10":["embarques.csv"]}`, w.Body.String())
}
