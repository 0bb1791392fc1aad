package models

// DisplayStatus is the closed set of presentation statuses. Every raw
// collector status maps into exactly one of these.
type DisplayStatus string

const (
	StatusPending     DisplayStatus = "Pending"
	StatusConfirmed   DisplayStatus = "Confirmed"
	StatusResultReady DisplayStatus = "Result Ready"
	StatusCancelled   DisplayStatus = "Cancelled"
	StatusUnknown     DisplayStatus = "Unknown"
)

// PatientView is the normalized patient projection. Optional fields stay as
// nullable keys (no omitempty) so downstream consumers always see the same
// shape regardless of what the collector sent.
type PatientView struct {
	PatientID  string  `json:"patient_id"`
	Name       string  `json:"name"`
	Age        *int    `json:"age"`
	Gender     *string `json:"gender"`
	NationalID *string `json:"national_id"`
	TestsCount *int    `json:"tests_count"`
}

// BookingRow is the immutable, display-ready projection of one raw booking
// record. Raw status and timestamps are retained alongside their formatted
// counterparts.
type BookingRow struct {
	Reference    string        `json:"reference"`
	BookingID    int64         `json:"booking_id"`
	RawStatus    string        `json:"raw_status"`
	Status       DisplayStatus `json:"status"`
	ResourceType string        `json:"resource_type"`
	ResourceID   string        `json:"resource_id"`
	StartAt      string        `json:"start_at"`
	EndAt        string        `json:"end_at"`
	Date         string        `json:"date"`
	Slot         string        `json:"slot"`
	Amount       float64       `json:"amount"`
	NameLabel    string        `json:"name_label"`
	TestLabel    string        `json:"test_label"`
	Patients     []PatientView `json:"patients"`
}

// SummaryCard is one entry of the bookings overview.
type SummaryCard struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Trend   string `json:"trend"`
	Caption string `json:"caption"`
}
