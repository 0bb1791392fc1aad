package collector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"labdesk/models"
)

// Endpoint templates of the collector API, keyed by collector id and, where
// relevant, booking id.
const (
	currentBookingsPath = "/collectors/%s/bookings/current"
	pastBookingsPath    = "/collectors/%s/bookings/past"
	updatePatientsPath  = "/collectors/%s/bookings/%d/patients"
	markCollectedPath   = "/collectors/%s/bookings/%d/collected"
)

// Client is the thin gateway to the collector API. Each call is one HTTP
// request bounded by the client timeout; there is no retry and no
// cancellation beyond that timeout. Every failure leaves this type as an
// *APIError.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds a gateway against the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// FetchBookings retrieves the current or past bookings envelope for one
// collector. Any bucket other than "past" fetches the current bucket.
func (c *Client) FetchBookings(collectorID, bucket string) (*models.BookingListResponse, error) {
	path := fmt.Sprintf(currentBookingsPath, collectorID)
	if bucket == "past" {
		path = fmt.Sprintf(pastBookingsPath, collectorID)
	}

	var envelope models.BookingListResponse
	if err := c.do(http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// UpdatePatients replaces/corrects the patient records attached to one
// booking.
func (c *Client) UpdatePatients(collectorID string, bookingID int64, req models.UpdatePatientsRequest) (*models.UpdatePatientsResponse, error) {
	path := fmt.Sprintf(updatePatientsPath, collectorID, bookingID)

	var result models.UpdatePatientsResponse
	if err := c.do(http.MethodPut, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MarkCollected records a sample-collected event for one booking.
func (c *Client) MarkCollected(collectorID string, bookingID int64, req models.MarkCollectedRequest) (*models.MarkCollectedResponse, error) {
	path := fmt.Sprintf(markCollectedPath, collectorID, bookingID)

	var result models.MarkCollectedResponse
	if err := c.do(http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do issues one request and decodes the 2xx response into out. Transport
// failures and non-2xx responses are classified before being returned.
func (c *Client) do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Classify(fmt.Errorf("encoding request failed: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return Classify(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("collector API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return Classify(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Classify(fmt.Errorf("reading response failed: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := classifyResponse(resp.StatusCode, data)
		c.logger.Warn("collector API returned an error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.Status),
			zap.String("code", apiErr.Code),
			zap.String("errorId", apiErr.ErrorID))
		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		return Classify(fmt.Errorf("decoding response failed: %w", err))
	}
	return nil
}
