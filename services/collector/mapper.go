package collector

import (
	"fmt"
	"math"
	"strings"
	"time"

	"labdesk/models"
)

// displayLocation is the fixed presentation timezone. All operational staff
// see the same wall-clock regardless of device locale.
var displayLocation = loadDisplayLocation()

func loadDisplayLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		return time.FixedZone("GST", 4*60*60)
	}
	return loc
}

// timestampLayouts are tried in order when parsing collector timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// MapBooking projects one raw collector record into a display row.
// The function is total: any combination of absent optional fields and any
// malformed timestamp still produces a row, never an error.
func MapBooking(raw models.CollectorBooking) models.BookingRow {
	row := models.BookingRow{
		Reference:    bookingReference(raw),
		BookingID:    raw.BookingID,
		RawStatus:    raw.BookingStatus,
		Status:       MapStatus(raw.BookingStatus),
		ResourceType: strValue(raw.ResourceType),
		ResourceID:   strValue(raw.ResourceID),
		StartAt:      raw.StartAt,
		EndAt:        strValue(raw.EndAt),
		Amount:       displayAmount(raw.AmountCapturedFils, raw.AmountExpectedFils),
		Patients:     projectPatients(raw.Patients),
	}
	row.NameLabel = nameLabel(row.Patients, patientCount(raw))
	row.TestLabel = testLabel(row.Patients)
	row.Date = FormatDate(raw.StartAt)
	row.Slot = formatSlot(raw.StartAt, raw.EndAt)
	return row
}

// bookingReference prefers the order identifier and falls back to a
// synthesized, deterministic "BK-<id>" reference.
func bookingReference(raw models.CollectorBooking) string {
	if raw.OrderID != nil && *raw.OrderID != "" {
		return *raw.OrderID
	}
	return fmt.Sprintf("BK-%d", raw.BookingID)
}

// MapStatus maps an open collector status string into the closed display
// set. Matching is case-insensitive; anything unrecognized is Unknown.
func MapStatus(raw string) models.DisplayStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "created":
		return models.StatusPending
	case "active":
		return models.StatusConfirmed
	case "fulfilled":
		return models.StatusResultReady
	case "cancelled":
		return models.StatusCancelled
	default:
		return models.StatusUnknown
	}
}

// projectPatients normalizes patient sub-records, keeping absent optional
// fields as explicit nulls so every patient carries the same shape.
func projectPatients(patients []models.Patient) []models.PatientView {
	views := make([]models.PatientView, 0, len(patients))
	for _, p := range patients {
		views = append(views, models.PatientView{
			PatientID:  p.PatientID,
			Name:       p.Name,
			Age:        p.Age,
			Gender:     p.Gender,
			NationalID: p.NationalID,
			TestsCount: p.TestsCount,
		})
	}
	return views
}

// patientCount prefers the collector-reported total when it exceeds the
// number of embedded sub-records.
func patientCount(raw models.CollectorBooking) int {
	count := len(raw.Patients)
	if raw.PatientsCount != nil && *raw.PatientsCount > count {
		count = *raw.PatientsCount
	}
	return count
}

func nameLabel(patients []models.PatientView, count int) string {
	if len(patients) == 0 {
		return "Patient"
	}
	name := patients[0].Name
	if name == "" {
		name = "Patient"
	}
	if count > 1 {
		return fmt.Sprintf("%s +%d", name, count-1)
	}
	return name
}

func testLabel(patients []models.PatientView) string {
	total := 0
	for _, p := range patients {
		if p.TestsCount != nil && *p.TestsCount > 0 {
			total += *p.TestsCount
		}
	}
	if total <= 0 {
		return "Lab Test"
	}
	if total == 1 {
		return "1 Test"
	}
	return fmt.Sprintf("%d Tests", total)
}

// displayAmount converts minor units (fils) to major units (AED), preferring
// a positive captured amount over the expected amount. The result is rounded
// to exactly two decimal places.
func displayAmount(captured, expected *int64) float64 {
	var fils int64
	switch {
	case captured != nil && *captured > 0:
		fils = *captured
	case expected != nil:
		fils = *expected
	}
	return math.Round(float64(fils)) / 100
}

// parseTimestamp attempts the known collector layouts in order.
func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a collector timestamp as a calendar date in the fixed
// display timezone. Unparseable input is returned unchanged.
func FormatDate(value string) string {
	t, ok := parseTimestamp(value)
	if !ok {
		return value
	}
	return t.In(displayLocation).Format("Jan 2, 2006")
}

// FormatTime renders a collector timestamp as a 24-hour wall-clock time in
// the fixed display timezone. Unparseable input is returned unchanged.
func FormatTime(value string) string {
	t, ok := parseTimestamp(value)
	if !ok {
		return value
	}
	return t.In(displayLocation).Format("15:04")
}

func formatSlot(startAt string, endAt *string) string {
	slot := FormatTime(startAt)
	if endAt != nil && *endAt != "" {
		slot += "-" + FormatTime(*endAt)
	}
	return slot
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
