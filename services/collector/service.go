package collector

import (
	"go.uber.org/zap"

	"labdesk/models"
)

// ListBookings fetches one bucket of bookings, maps every record to a
// display row and derives the overview cards. The returned view is
// self-contained; concurrent calls share no state.
func (s *DefaultBookingService) ListBookings(collectorID, bucket string) (*BookingListView, error) {
	envelope, err := s.Gateway.FetchBookings(collectorID, bucket)
	if err != nil {
		return nil, err
	}

	rows := make([]models.BookingRow, 0, len(envelope.Items))
	for _, item := range envelope.Items {
		rows = append(rows, MapBooking(item))
	}

	s.Logger.Debug("mapped collector bookings",
		zap.String("collectorId", collectorID),
		zap.String("bucket", envelope.Bucket),
		zap.Int("rows", len(rows)))

	return &BookingListView{
		Collector:         envelope.Collector,
		Bucket:            envelope.Bucket,
		Rows:              rows,
		Overview:          BuildOverview(rows),
		NextBeforeStartAt: envelope.NextBeforeStartAt,
	}, nil
}

// UpdatePatients forwards a patients correction to the collector API.
func (s *DefaultBookingService) UpdatePatients(collectorID string, bookingID int64, req models.UpdatePatientsRequest) (*models.UpdatePatientsResponse, error) {
	return s.Gateway.UpdatePatients(collectorID, bookingID, req)
}

// MarkCollected forwards a sample-collected event to the collector API.
func (s *DefaultBookingService) MarkCollected(collectorID string, bookingID int64, req models.MarkCollectedRequest) (*models.MarkCollectedResponse, error) {
	return s.Gateway.MarkCollected(collectorID, bookingID, req)
}
