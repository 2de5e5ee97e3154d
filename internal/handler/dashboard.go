// Package handler exposes the dashboard's HTTP handlers.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jason0922/final-project-hotel/internal/analytics"
	"github.com/Jason0922/final-project-hotel/internal/view"
)

// Reports is the query set the pages draw on. *analytics.Repo satisfies it.
type Reports interface {
	TotalRevenue(ctx context.Context) analytics.Result[float64]
	QuarterlyRevenue(ctx context.Context) analytics.Result[[]analytics.QuarterRevenue]
	MonthlyRevenue(ctx context.Context) analytics.Result[[]analytics.MonthRevenue]
	ServiceRevenue(ctx context.Context) analytics.Result[[]analytics.ServiceRevenue]
	SeasonalRevenue(ctx context.Context) analytics.Result[[]analytics.SeasonRevenue]
	DailyOccupancy(ctx context.Context) analytics.Result[[]analytics.Occupancy]
	MonthlyOccupancy(ctx context.Context) analytics.Result[[]analytics.Occupancy]
	TopCustomers(ctx context.Context) analytics.Result[[]analytics.Customer]
	HighRiskCustomers(ctx context.Context) analytics.Result[[]analytics.RiskCustomer]
	CustomerRetention(ctx context.Context) analytics.Result[[]analytics.RetainedGuest]
	EventsByMonth(ctx context.Context) analytics.Result[[]analytics.EventMonth]
	AttendanceSummary(ctx context.Context) analytics.Result[analytics.Attendance]
	EventPerformance(ctx context.Context) analytics.Result[[]analytics.EventPerformance]
	FoodSpendSummary(ctx context.Context) analytics.Result[analytics.FoodSpend]
	MealTypeRevenue(ctx context.Context) analytics.Result[[]analytics.MealRevenue]
	TopRooms(ctx context.Context) analytics.Result[[]analytics.Room]
}

// DashboardHandler renders every report page. Data failures never produce
// an error response: the page renders with zero values and a notice.
type DashboardHandler struct {
	reports Reports
	log     *slog.Logger
}

// NewDashboardHandler panics on a nil Reports, which is a wiring bug.
func NewDashboardHandler(reports Reports, logger *slog.Logger) *DashboardHandler {
	if reports == nil {
		panic("handler: nil Reports")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{reports: reports, log: logger.With("component", "dashboard_handler")}
}

func (h *DashboardHandler) render(c echo.Context, p view.Page) error {
	if len(p.Notices) > 0 {
		h.log.WarnContext(c.Request().Context(), "page rendered with degraded data",
			"path", p.Path, "notices", p.Notices)
	}
	return c.Render(http.StatusOK, view.PageTemplate, p)
}

// Dashboard serves / and /dashboard.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	return h.render(c, view.Dashboard(view.Summary{
		TotalRevenue:      h.reports.TotalRevenue(ctx),
		MonthlyRevenue:    h.reports.MonthlyRevenue(ctx),
		ServiceRevenue:    h.reports.ServiceRevenue(ctx),
		SeasonalRevenue:   h.reports.SeasonalRevenue(ctx),
		MonthlyOccupancy:  h.reports.MonthlyOccupancy(ctx),
		TopCustomers:      h.reports.TopCustomers(ctx),
		TopRooms:          h.reports.TopRooms(ctx),
		EventPerformance:  h.reports.EventPerformance(ctx),
		CustomerRetention: h.reports.CustomerRetention(ctx),
	}))
}

// TotalRevenue serves GET /revenue/total.
func (h *DashboardHandler) TotalRevenue(c echo.Context) error {
	return h.render(c, view.TotalRevenue(h.reports.TotalRevenue(c.Request().Context())))
}

// QuarterlyRevenue serves GET /revenue/quarterly.
func (h *DashboardHandler) QuarterlyRevenue(c echo.Context) error {
	return h.render(c, view.QuarterlyRevenue(h.reports.QuarterlyRevenue(c.Request().Context())))
}

// MonthlyRevenue serves GET /revenue/monthly.
func (h *DashboardHandler) MonthlyRevenue(c echo.Context) error {
	return h.render(c, view.MonthlyRevenue(h.reports.MonthlyRevenue(c.Request().Context())))
}

// ServiceRevenue serves GET /revenue/service.
func (h *DashboardHandler) ServiceRevenue(c echo.Context) error {
	return h.render(c, view.ServiceRevenue(h.reports.ServiceRevenue(c.Request().Context())))
}

// SeasonalRevenue serves GET /revenue/seasonal.
func (h *DashboardHandler) SeasonalRevenue(c echo.Context) error {
	return h.render(c, view.SeasonalRevenue(h.reports.SeasonalRevenue(c.Request().Context())))
}

// DailyOccupancy serves GET /occupancy/daily, the last 90 days of arrivals.
func (h *DashboardHandler) DailyOccupancy(c echo.Context) error {
	return h.render(c, view.DailyOccupancy(h.reports.DailyOccupancy(c.Request().Context())))
}

// MonthlyOccupancy serves GET /occupancy/monthly.
func (h *DashboardHandler) MonthlyOccupancy(c echo.Context) error {
	return h.render(c, view.MonthlyOccupancy(h.reports.MonthlyOccupancy(c.Request().Context())))
}

// TopCustomers serves GET /customers/top.
func (h *DashboardHandler) TopCustomers(c echo.Context) error {
	return h.render(c, view.TopCustomers(h.reports.TopCustomers(c.Request().Context())))
}

// HighRiskCustomers serves GET /customers/high-risk.
func (h *DashboardHandler) HighRiskCustomers(c echo.Context) error {
	return h.render(c, view.HighRiskCustomers(h.reports.HighRiskCustomers(c.Request().Context())))
}

// CustomerRetention serves GET /customers/retention.
func (h *DashboardHandler) CustomerRetention(c echo.Context) error {
	return h.render(c, view.CustomerRetention(h.reports.CustomerRetention(c.Request().Context())))
}

// EventsByMonth serves GET /events/count.
func (h *DashboardHandler) EventsByMonth(c echo.Context) error {
	return h.render(c, view.EventsByMonth(h.reports.EventsByMonth(c.Request().Context())))
}

// Attendance serves GET /events/attendance.
func (h *DashboardHandler) Attendance(c echo.Context) error {
	return h.render(c, view.Attendance(h.reports.AttendanceSummary(c.Request().Context())))
}

// EventPerformance serves GET /events/performance.
func (h *DashboardHandler) EventPerformance(c echo.Context) error {
	return h.render(c, view.EventPerformance(h.reports.EventPerformance(c.Request().Context())))
}

// FoodSpend serves GET /food/avg-spend.
func (h *DashboardHandler) FoodSpend(c echo.Context) error {
	return h.render(c, view.FoodSpend(h.reports.FoodSpendSummary(c.Request().Context())))
}

// MealTypeRevenue serves GET /food/meal-type.
func (h *DashboardHandler) MealTypeRevenue(c echo.Context) error {
	return h.render(c, view.MealTypeRevenue(h.reports.MealTypeRevenue(c.Request().Context())))
}

// TopRooms serves GET /rooms/top.
func (h *DashboardHandler) TopRooms(c echo.Context) error {
	return h.render(c, view.TopRooms(h.reports.TopRooms(c.Request().Context())))
}
