package update_commission_config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/arenda-soft/ARS-SettlementService/internal/service/commission"
	"github.com/arenda-soft/ARS-SettlementService/internal/service/commission/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct {
	deleteErr error
	deleted   []int64
}

func (m *mockService) Set(_ context.Context, req *models.SetCommissionRequest) (*models.CommissionResponse, error) {
	return &models.CommissionResponse{
		ApartmentID:           req.ApartmentID,
		CommissionRatePercent: req.CommissionRatePercent,
	}, nil
}

func (m *mockService) Delete(_ context.Context, apartmentID int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, apartmentID)
	return nil
}

func deleteRequest(apartmentID string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/apartments/"+apartmentID+"/commission", nil)
	return mux.SetURLVars(req, map[string]string{"apartmentId": apartmentID})
}

func TestHandleDelete_NoContent(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.HandleDelete(rec, deleteRequest("7"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Type"))
	assert.Equal(t, []int64{7}, svc.deleted)
}

func TestHandleDelete_NotFound(t *testing.T) {
	svc := &mockService{deleteErr: commission.ErrConfigNotFound}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.HandleDelete(rec, deleteRequest("7"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHandleDelete_InvalidApartmentID(t *testing.T) {
	h := NewHandler(&mockService{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.HandleDelete(rec, deleteRequest("abc"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
