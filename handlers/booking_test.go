package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"labdesk/models"
	"labdesk/services/collector"
)

// stubBookingService lets each test script the service layer.
type stubBookingService struct {
	view      *collector.BookingListView
	updateRes *models.UpdatePatientsResponse
	markRes   *models.MarkCollectedResponse
	err       error

	gotCollectorID string
	gotBucket      string
	gotBookingID   int64
}

func (s *stubBookingService) ListBookings(collectorID, bucket string) (*collector.BookingListView, error) {
	s.gotCollectorID = collectorID
	s.gotBucket = bucket
	return s.view, s.err
}

func (s *stubBookingService) UpdatePatients(collectorID string, bookingID int64, req models.UpdatePatientsRequest) (*models.UpdatePatientsResponse, error) {
	s.gotCollectorID = collectorID
	s.gotBookingID = bookingID
	return s.updateRes, s.err
}

func (s *stubBookingService) MarkCollected(collectorID string, bookingID int64, req models.MarkCollectedRequest) (*models.MarkCollectedResponse, error) {
	s.gotCollectorID = collectorID
	s.gotBookingID = bookingID
	return s.markRes, s.err
}

func newTestRouter(svc collector.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/api/collectors/:collectorID/bookings", h.ListBookings)
	r.PUT("/api/collectors/:collectorID/bookings/:bookingID/patients", h.UpdatePatients)
	r.POST("/api/collectors/:collectorID/bookings/:bookingID/collected", h.MarkCollected)
	return r
}

func TestListBookingsHandler(t *testing.T) {
	svc := &stubBookingService{
		view: &collector.BookingListView{
			Collector: models.CollectorRef{PartyID: "c-1", Name: "Lab One"},
			Bucket:    "current",
			Rows:      []models.BookingRow{{Reference: "BK-7", Status: models.StatusConfirmed}},
			Overview:  collector.BuildOverview(nil),
		},
	}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/collectors/c-1/bookings", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c-1", svc.gotCollectorID)
	assert.Equal(t, "current", svc.gotBucket, "bucket defaults to current")

	var view collector.BookingListView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "BK-7", view.Rows[0].Reference)
}

func TestListBookingsHandlerRejectsUnknownBucket(t *testing.T) {
	router := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/collectors/c-1/bookings?bucket=archived", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookingsHandlerNetworkFailure(t *testing.T) {
	svc := &stubBookingService{err: errors.New("dial tcp: lookup api: no such host")}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/collectors/c-1/bookings?bucket=past", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)

	var body struct {
		Message      string `json:"message"`
		NetworkError bool   `json:"networkError"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.NetworkError)
	assert.NotEmpty(t, body.Message)
	assert.NotContains(t, body.Message, "dial tcp", "raw transport text must not leak")
}

func TestListBookingsHandlerUpstreamStatus(t *testing.T) {
	svc := &stubBookingService{err: collector.Classify(nil)}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/collectors/c-1/bookings", nil)
	router.ServeHTTP(w, req)

	// A classified error without status or network flag renders as 500.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdatePatientsHandler(t *testing.T) {
	svc := &stubBookingService{
		updateRes: &models.UpdatePatientsResponse{Status: "updated", BookingID: 11},
	}
	router := newTestRouter(svc)

	payload := `{"patients":[{"patient_id":"p1","name":"Jane D"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/collectors/c-1/bookings/11/patients", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(11), svc.gotBookingID)
}

func TestUpdatePatientsHandlerValidation(t *testing.T) {
	router := newTestRouter(&stubBookingService{})

	// Non-numeric booking id.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/collectors/c-1/bookings/abc/patients", strings.NewReader(`{"patients":[{"patient_id":"p1"}]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Empty patients list.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/collectors/c-1/bookings/11/patients", strings.NewReader(`{"patients":[]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkCollectedHandlerAllowsEmptyBody(t *testing.T) {
	svc := &stubBookingService{
		markRes: &models.MarkCollectedResponse{Status: "accepted", Event: "sample_collected"},
	}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/collectors/c-1/bookings/11/collected", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(11), svc.gotBookingID)
}

func TestHandlerSurfacesErrorID(t *testing.T) {
	upstream := collector.Classify(errors.New("boom"))
	upstream.Status = 422
	upstream.Code = "validation_failed"
	upstream.ErrorID = "e-42"

	svc := &stubBookingService{err: upstream}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/collectors/c-1/bookings", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		ErrorID string `json:"errorId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation_failed", body.Code)
	assert.Equal(t, "e-42", body.ErrorID)
	assert.Equal(t, "The submitted data failed validation.", body.Message)
}
