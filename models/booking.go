package models

// CollectorRef identifies the party (lab/agent) on whose behalf bookings are fetched.
type CollectorRef struct {
	PartyID string `json:"party_id"`
	Name    string `json:"name"`
}

// Patient is one patient sub-record attached to a raw collector booking.
type Patient struct {
	PatientID  string  `json:"patient_id"`
	Name       string  `json:"name"`
	Age        *int    `json:"age,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	NationalID *string `json:"national_id,omitempty"`
	TestsCount *int    `json:"tests_count,omitempty"`
}

// CollectorBooking is one raw booking record as returned by the collector API.
// The record is untrusted input: every field other than booking_id and
// start_at may be absent, and booking_status is an open string — values we
// have never seen must survive unmodified.
type CollectorBooking struct {
	BookingID          int64     `json:"booking_id"`
	OrderID            *string   `json:"order_id,omitempty"`
	BookingStatus      string    `json:"booking_status"`
	ResourceType       *string   `json:"resource_type,omitempty"`
	ResourceID         *string   `json:"resource_id,omitempty"`
	StartAt            string    `json:"start_at"`
	EndAt              *string   `json:"end_at,omitempty"`
	CreatedAt          *string   `json:"created_at,omitempty"`
	PaidAt             *string   `json:"paid_at,omitempty"`
	AmountExpectedFils *int64    `json:"amount_expected_aed_fils,omitempty"`
	AmountCapturedFils *int64    `json:"amount_captured_aed_fils,omitempty"`
	Patients           []Patient `json:"patients,omitempty"`
	PatientsCount      *int      `json:"patients_count,omitempty"`
}

// BookingListResponse is the read-path envelope for current/past bookings.
type BookingListResponse struct {
	Collector         CollectorRef       `json:"collector"`
	Bucket            string             `json:"bucket"`
	Items             []CollectorBooking `json:"items"`
	NextBeforeStartAt *string            `json:"next_before_start_at,omitempty"`
}

// APIErrorBody is the error envelope the collector API returns on non-2xx
// responses. Every field is optional: upstream gateway timeouts and proxy
// errors may carry none of them.
type APIErrorBody struct {
	Code              string   `json:"code,omitempty"`
	Message           string   `json:"message,omitempty"`
	MissingPatientIDs []string `json:"missing_patient_ids,omitempty"`
	ErrorID           string   `json:"error_id,omitempty"`
	RequestID         string   `json:"request_id,omitempty"`
}
