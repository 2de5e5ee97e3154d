package view

import (
	"github.com/Jason0922/final-project-hotel/internal/analytics"
)

// TopRooms renders the most booked rooms.
func TopRooms(res analytics.Result[[]analytics.Room]) Page {
	p := newPage("Top Rooms", "/rooms/top")
	p.note(res, "Room")

	labels := make([]string, 0, len(res.Value))
	bookings := make([]float64, 0, len(res.Value))
	rows := make([][]string, 0, len(res.Value))
	for _, r := range res.Value {
		labels = append(labels, r.Number)
		bookings = append(bookings, float64(r.Bookings))
		rows = append(rows, []string{r.Number, r.Building, Count(r.Bookings), Currency(r.Revenue)})
	}
	p.Charts = append(p.Charts, Chart{
		ID:     "top-rooms",
		Type:   "bar",
		Title:  "Bookings per room",
		Labels: labels,
		Series: []Series{{Name: "Bookings", Values: bookings}},
		Format: FormatCount,
	})
	p.Tables = append(p.Tables, Table{
		Title:   "Top rooms",
		Columns: []string{"Room", "Building", "Bookings", "Revenue"},
		Rows:    rows,
	})
	return p
}
