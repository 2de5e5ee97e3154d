package view

import (
	"github.com/Jason0922/final-project-hotel/internal/analytics"
)

// EventsByMonth renders event counts and estimated attendance per month.
func EventsByMonth(res analytics.Result[[]analytics.EventMonth]) Page {
	p := newPage("Events by Month", "/events/count")
	p.note(res, "Event")

	labels := make([]string, 0, len(res.Value))
	counts := make([]float64, 0, len(res.Value))
	rows := make([][]string, 0, len(res.Value))
	var total int64
	for _, m := range res.Value {
		labels = append(labels, m.Month)
		counts = append(counts, float64(m.Events))
		rows = append(rows, []string{m.Month, Count(m.Events), Count(m.TotalEstimated), Average(m.AvgEstimated), Count(m.Hosts)})
		total += m.Events
	}
	p.Cards = append(p.Cards, Card{
		Title:    "Events",
		Value:    Count(total),
		Subtitle: "All months",
		Icon:     "calendar",
		Color:    "teal",
	})
	p.Charts = append(p.Charts, Chart{
		ID:     "events-by-month",
		Type:   "bar",
		Title:  "Events per month",
		Labels: labels,
		Series: []Series{{Name: "Events", Values: counts}},
		Format: FormatCount,
	})
	p.Tables = append(p.Tables, Table{
		Title:   "Events by month",
		Columns: []string{"Month", "Events", "Estimated attendance", "Avg estimated", "Hosts"},
		Rows:    rows,
	})
	return p
}

// Attendance compares estimated with actual attendance.
func Attendance(res analytics.Result[analytics.Attendance]) Page {
	p := newPage("Event Attendance", "/events/attendance")
	p.note(res, "Attendance")

	a := res.Value
	p.Cards = append(p.Cards,
		Card{Title: "Avg Estimated", Value: Average(a.AvgEstimated), Subtitle: "Per event", Icon: "users", Color: "blue"},
		Card{Title: "Avg Actual", Value: Average(a.AvgActual), Subtitle: "Per event room", Icon: "check", Color: "green"},
	)
	p.Charts = append(p.Charts, Chart{
		ID:     "attendance",
		Type:   "bar",
		Title:  "Estimated vs actual attendance",
		Labels: []string{"Total", "Average"},
		Series: []Series{
			{Name: "Estimated", Values: []float64{float64(a.TotalEstimated), a.AvgEstimated}},
			{Name: "Actual", Values: []float64{float64(a.TotalActual), a.AvgActual}},
		},
		Format: FormatCount,
	})
	p.Tables = append(p.Tables, Table{
		Title:   "Attendance summary",
		Columns: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Events", Count(a.Events)},
			{"Event rooms", Count(a.EventRooms)},
			{"Total estimated", Count(a.TotalEstimated)},
			{"Avg estimated", Average(a.AvgEstimated)},
			{"Total actual", Count(a.TotalActual)},
			{"Avg actual", Average(a.AvgActual)},
		},
	})
	return p
}

// EventPerformance renders room use and generated revenue per event.
func EventPerformance(res analytics.Result[[]analytics.EventPerformance]) Page {
	p := newPage("Event Performance", "/events/performance")
	p.note(res, "Event performance")

	rows := make([][]string, 0, len(res.Value))
	for _, e := range res.Value {
		rows = append(rows, []string{
			e.Event,
			e.Host,
			Count(e.RoomsUsed),
			Count(e.SlotsUsed),
			Count(e.EstimatedAttendance),
			Count(e.EatingSlots),
			Count(e.NonEatingSlots),
			Count(e.GuestReservations),
			Currency(e.Revenue),
		})
	}
	p.Tables = append(p.Tables, Table{
		Title: "Event performance",
		Columns: []string{
			"Event", "Host", "Rooms", "Slots", "Estimated",
			"Eating slots", "Other slots", "Guest reservations", "Revenue",
		},
		Rows: rows,
	})
	return p
}
