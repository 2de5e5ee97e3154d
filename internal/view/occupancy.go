package view

import (
	"fmt"
	"strings"

	"github.com/Jason0922/final-project-hotel/internal/analytics"
)

// DailyOccupancy renders the per-day occupancy window.
func DailyOccupancy(res analytics.Result[[]analytics.Occupancy]) Page {
	window := fmt.Sprintf("Last %d days", analytics.DailyOccupancyWindow)
	return occupancy("Daily Occupancy", "/occupancy/daily", "Date", window, res)
}

// MonthlyOccupancy renders occupancy per month over the full history.
func MonthlyOccupancy(res analytics.Result[[]analytics.Occupancy]) Page {
	return occupancy("Monthly Occupancy", "/occupancy/monthly", "Month", "All months", res)
}

func occupancy(title, path, period, subtitle string, res analytics.Result[[]analytics.Occupancy]) Page {
	p := newPage(title, path)
	p.note(res, title)

	labels := make([]string, 0, len(res.Value))
	rates := make([]float64, 0, len(res.Value))
	rows := make([][]string, 0, len(res.Value))
	for _, o := range res.Value {
		labels = append(labels, o.Period)
		rates = append(rates, o.Rate)
		rows = append(rows, []string{o.Period, Count(o.Stays), Count(o.RoomsOccupied), Count(o.AvailableRooms), Percent(o.Rate)})
	}
	p.Cards = append(p.Cards, Card{
		Title:    "Average Occupancy",
		Value:    Percent(averageRate(res.Value)),
		Subtitle: subtitle,
		Icon:     "bed",
		Color:    "purple",
	})
	p.Charts = append(p.Charts, Chart{
		ID:     "occupancy-" + strings.ToLower(period),
		Type:   "line",
		Title:  "Occupancy rate",
		Labels: labels,
		Series: []Series{{Name: "Occupancy", Values: rates}},
		Format: FormatPercent,
	})
	p.Tables = append(p.Tables, Table{
		Title:   title,
		Columns: []string{period, "Stays", "Rooms occupied", "Available rooms", "Occupancy rate"},
		Rows:    rows,
	})
	return p
}

func averageRate(rows []analytics.Occupancy) float64 {
	if len(rows) == 0 {
		return 0
	}
	var sum float64
	for _, o := range rows {
		sum += o.Rate
	}
	return sum / float64(len(rows))
}
