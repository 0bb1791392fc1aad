package collector

import (
	"strconv"

	"labdesk/models"
)

// BuildOverview reduces mapped rows into the fixed-order summary cards:
// total, pending, confirmed, result ready. Counts only; input order is
// irrelevant.
func BuildOverview(rows []models.BookingRow) []models.SummaryCard {
	var pending, confirmed, ready int
	for _, row := range rows {
		switch row.Status {
		case models.StatusPending:
			pending++
		case models.StatusConfirmed:
			confirmed++
		case models.StatusResultReady:
			ready++
		}
	}

	return []models.SummaryCard{
		{
			Label:   "Total Bookings",
			Value:   strconv.Itoa(len(rows)),
			Trend:   "up",
			Caption: "All bookings in this view",
		},
		{
			Label:   "Pending",
			Value:   strconv.Itoa(pending),
			Trend:   trendFor(pending),
			Caption: "Awaiting confirmation",
		},
		{
			Label:   "Confirmed",
			Value:   strconv.Itoa(confirmed),
			Trend:   trendFor(confirmed),
			Caption: "Scheduled for collection",
		},
		{
			Label:   "Result Ready",
			Value:   strconv.Itoa(ready),
			Trend:   trendFor(ready),
			Caption: "Results available for review",
		},
	}
}

func trendFor(count int) string {
	if count > 0 {
		return "up"
	}
	return "down"
}
