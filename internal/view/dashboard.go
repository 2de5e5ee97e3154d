package view

import (
	"github.com/Jason0922/final-project-hotel/internal/analytics"
)

// Summary gathers the results shown on the main dashboard.
type Summary struct {
	TotalRevenue      analytics.Result[float64]
	MonthlyRevenue    analytics.Result[[]analytics.MonthRevenue]
	ServiceRevenue    analytics.Result[[]analytics.ServiceRevenue]
	SeasonalRevenue   analytics.Result[[]analytics.SeasonRevenue]
	MonthlyOccupancy  analytics.Result[[]analytics.Occupancy]
	TopCustomers      analytics.Result[[]analytics.Customer]
	TopRooms          analytics.Result[[]analytics.Room]
	EventPerformance  analytics.Result[[]analytics.EventPerformance]
	CustomerRetention analytics.Result[[]analytics.RetainedGuest]
}

// Dashboard renders the full summary: the revenue, occupancy and customer
// headlines followed by each section's charts and tables.
func Dashboard(s Summary) Page {
	p := newPage("Hotel Analytics Dashboard", "/dashboard")
	head := []Page{TotalRevenue(s.TotalRevenue), MonthlyOccupancy(s.MonthlyOccupancy), TopCustomers(s.TopCustomers)}
	for _, h := range head {
		p.Cards = append(p.Cards, h.Cards...)
		p.Notices = append(p.Notices, h.Notices...)
	}

	occupancy := head[1]
	occupancy.Cards, occupancy.Notices = nil, nil
	customers := head[2]
	customers.Cards, customers.Notices = nil, nil

	p.merge(
		MonthlyRevenue(s.MonthlyRevenue),
		ServiceRevenue(s.ServiceRevenue),
		SeasonalRevenue(s.SeasonalRevenue),
		occupancy,
		customers,
		TopRooms(s.TopRooms),
		EventPerformance(s.EventPerformance),
		CustomerRetention(s.CustomerRetention),
	)
	return p
}
