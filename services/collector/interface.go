package collector

import (
	"go.uber.org/zap"

	"labdesk/models"
)

// BookingListView bundles the mapped rows of one fetch with their overview
// cards. The view is recomputed on every fetch and never cached.
type BookingListView struct {
	Collector         models.CollectorRef  `json:"collector"`
	Bucket            string               `json:"bucket"`
	Rows              []models.BookingRow  `json:"rows"`
	Overview          []models.SummaryCard `json:"overview"`
	NextBeforeStartAt *string              `json:"next_before_start_at,omitempty"`
}

// BookingService is the presentation-facing surface over the collector API.
type BookingService interface {
	ListBookings(collectorID, bucket string) (*BookingListView, error)
	UpdatePatients(collectorID string, bookingID int64, req models.UpdatePatientsRequest) (*models.UpdatePatientsResponse, error)
	MarkCollected(collectorID string, bookingID int64, req models.MarkCollectedRequest) (*models.MarkCollectedResponse, error)
}

// DefaultBookingService implements BookingService on top of the gateway.
type DefaultBookingService struct {
	Gateway *Client
	Logger  *zap.Logger
}
