// Package router wires middleware and dashboard routes onto an Echo instance.
package router

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Jason0922/final-project-hotel/internal/handler"
)

// Use installs the request id, access log and panic recovery middleware,
// followed by any extra middleware such as the rate limiter.
func Use(e *echo.Echo, logger *slog.Logger, extra ...echo.MiddlewareFunc) {
	if logger == nil {
		logger = slog.Default()
	}
	access := logger.With("component", "http")

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= 500 {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("err", v.Error.Error()))
			}
			access.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	for _, mw := range extra {
		e.Use(mw)
	}
}

// RegisterRoutes maps the health check and every report page.
func RegisterRoutes(e *echo.Echo, h *handler.DashboardHandler) {
	e.GET("/healthz", handler.Health)

	e.GET("/", h.Dashboard)
	e.GET("/dashboard", h.Dashboard)

	revenue := e.Group("/revenue")
	revenue.GET("/total", h.TotalRevenue)
	revenue.GET("/quarterly", h.QuarterlyRevenue)
	revenue.GET("/monthly", h.MonthlyRevenue)
	revenue.GET("/service", h.ServiceRevenue)
	revenue.GET("/seasonal", h.SeasonalRevenue)

	occupancy := e.Group("/occupancy")
	occupancy.GET("/daily", h.DailyOccupancy)
	occupancy.GET("/monthly", h.MonthlyOccupancy)

	e.GET("/rooms/top", h.TopRooms)

	customers := e.Group("/customers")
	customers.GET("/top", h.TopCustomers)
	customers.GET("/high-risk", h.HighRiskCustomers)
	customers.GET("/retention", h.CustomerRetention)

	events := e.Group("/events")
	events.GET("/count", h.EventsByMonth)
	events.GET("/attendance", h.Attendance)
	events.GET("/performance", h.EventPerformance)

	food := e.Group("/food")
	food.GET("/avg-spend", h.FoodSpend)
	food.GET("/meal-type", h.MealTypeRevenue)
}
