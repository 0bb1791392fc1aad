package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"labdesk/models"
	"labdesk/services/collector"
	"labdesk/utils"
)

// BookingHandler exposes the collector booking operations over HTTP.
type BookingHandler struct {
	Service collector.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc collector.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// apiErrorResponse is the wire shape of a classified failure. One human
// sentence plus the machine fields a support escalation needs.
type apiErrorResponse struct {
	Message           string   `json:"message"`
	Code              string   `json:"code,omitempty"`
	ErrorID           string   `json:"errorId,omitempty"`
	NetworkError      bool     `json:"networkError"`
	MissingPatientIDs []string `json:"missing_patient_ids,omitempty"`
}

// renderAPIError converts any failure into the single structured error shape
// and writes it. Raw errors never reach the client.
func (h *BookingHandler) renderAPIError(c *gin.Context, err error) {
	apiErr := collector.Classify(err)

	status := http.StatusInternalServerError
	switch {
	case apiErr.NetworkError:
		status = http.StatusBadGateway
	case apiErr.Status >= 400:
		status = apiErr.Status
	}

	h.Logger.Warn("request failed",
		zap.Int("status", status),
		zap.String("code", apiErr.Code),
		zap.String("errorId", apiErr.ErrorID),
		zap.Bool("networkError", apiErr.NetworkError))

	resp := apiErrorResponse{
		Message:      collector.ResolveMessage(apiErr),
		Code:         apiErr.Code,
		ErrorID:      apiErr.ErrorID,
		NetworkError: apiErr.NetworkError,
	}
	if apiErr.Details != nil && len(apiErr.Details.MissingPatientIDs) > 0 {
		resp.MissingPatientIDs = apiErr.Details.MissingPatientIDs
	}
	c.JSON(status, resp)
}

// ListBookings returns the mapped rows and overview for one collector bucket.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	collectorID := c.Param("collectorID")
	bucket := c.DefaultQuery("bucket", "current")
	if bucket != "current" && bucket != "past" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bucket must be \"current\" or \"past\""})
		return
	}

	view, err := h.Service.ListBookings(collectorID, bucket)
	if err != nil {
		h.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdatePatients forwards patient corrections for one booking.
func (h *BookingHandler) UpdatePatients(c *gin.Context) {
	collectorID := c.Param("collectorID")
	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req models.UpdatePatientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if len(req.Patients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patients list must not be empty"})
		return
	}

	result, err := h.Service.UpdatePatients(collectorID, bookingID, req)
	if err != nil {
		h.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// MarkCollected records a sample-collected event for one booking.
func (h *BookingHandler) MarkCollected(c *gin.Context) {
	collectorID := c.Param("collectorID")
	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	// The whole request body is optional for this event.
	var req models.MarkCollectedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
	}

	result, err := h.Service.MarkCollected(collectorID, bookingID, req)
	if err != nil {
		h.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Health returns the latest collector API reachability snapshot.
func (h *BookingHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
