package models

// PatientUpdate describes one patient correction in an update-patients
// request. The list is ordered; only PatientID is required.
type PatientUpdate struct {
	PatientID    string  `json:"patient_id"`
	NewPatientID *string `json:"new_patient_id,omitempty"`
	Name         *string `json:"name,omitempty"`
	Age          *int    `json:"age,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	NationalID   *string `json:"national_id,omitempty"`
}

// UpdatePatientsRequest updates the patient records attached to one booking.
type UpdatePatientsRequest struct {
	Patients []PatientUpdate `json:"patients"`
}

// PatientRemap records an identifier change applied by the collector API.
type PatientRemap struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// UpdatePatientsResponse is the collector API response to a patients update.
type UpdatePatientsResponse struct {
	Status    string         `json:"status"`
	BookingID int64          `json:"booking_id"`
	OrderID   string         `json:"order_id"`
	Collector CollectorRef   `json:"collector"`
	Patients  []Patient      `json:"patients"`
	Remapped  []PatientRemap `json:"remapped,omitempty"`
}

// MarkCollectedRequest marks a sample as collected for one booking.
type MarkCollectedRequest struct {
	EventID     *string        `json:"event_id,omitempty"`
	CollectedAt *string        `json:"collected_at,omitempty"`
	RawEvent    map[string]any `json:"raw_event,omitempty"`
}

// MarkCollectedResponse is the collector API response to a collected event.
type MarkCollectedResponse struct {
	Status        string       `json:"status"`
	Event         string       `json:"event"`
	BookingID     int64        `json:"booking_id"`
	BookingStatus string       `json:"booking_status"`
	Collector     CollectorRef `json:"collector"`
	WorkflowID    *string      `json:"workflow_id,omitempty"`
	RunID         *string      `json:"run_id,omitempty"`
}
