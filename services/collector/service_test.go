package collector

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"labdesk/models"
)

func TestListBookingsMapsAndAggregates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.BookingListResponse{
			Collector: models.CollectorRef{PartyID: "c-1", Name: "Lab One"},
			Bucket:    "current",
			Items: []models.CollectorBooking{
				{BookingID: 1, BookingStatus: "created", StartAt: "2024-01-01T09:00:00Z"},
				{BookingID: 2, BookingStatus: "active", StartAt: "2024-01-02T09:00:00Z"},
				{BookingID: 3, BookingStatus: "mystery", StartAt: "2024-01-03T09:00:00Z"},
			},
			NextBeforeStartAt: strPtr("2024-01-01T00:00:00Z"),
		})
	})

	svc := &DefaultBookingService{Gateway: client, Logger: zap.NewNop()}
	view, err := svc.ListBookings("c-1", "current")
	require.NoError(t, err)

	assert.Equal(t, "Lab One", view.Collector.Name)
	assert.Equal(t, "current", view.Bucket)
	require.Len(t, view.Rows, 3)
	assert.Equal(t, models.StatusPending, view.Rows[0].Status)
	assert.Equal(t, models.StatusConfirmed, view.Rows[1].Status)
	assert.Equal(t, models.StatusUnknown, view.Rows[2].Status)

	require.Len(t, view.Overview, 4)
	assert.Equal(t, "3", view.Overview[0].Value)
	assert.Equal(t, "1", view.Overview[1].Value)
	assert.Equal(t, "1", view.Overview[2].Value)
	assert.Equal(t, "0", view.Overview[3].Value)

	require.NotNil(t, view.NextBeforeStartAt)
	assert.Equal(t, "2024-01-01T00:00:00Z", *view.NextBeforeStartAt)
}

func TestListBookingsPropagatesStructuredError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	svc := &DefaultBookingService{Gateway: client, Logger: zap.NewNop()}
	view, err := svc.ListBookings("c-1", "current")
	require.Error(t, err)
	assert.Nil(t, view)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
}

func TestListBookingsEmptySet(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.BookingListResponse{Bucket: "past"})
	})

	svc := &DefaultBookingService{Gateway: client, Logger: zap.NewNop()}
	view, err := svc.ListBookings("c-1", "past")
	require.NoError(t, err)

	assert.NotNil(t, view.Rows)
	assert.Empty(t, view.Rows)
	require.Len(t, view.Overview, 4)
	for _, card := range view.Overview {
		assert.Equal(t, "0", card.Value)
	}
}
