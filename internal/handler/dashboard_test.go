package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Jason0922/final-project-hotel/internal/analytics"
	"github.com/Jason0922/final-project-hotel/internal/view"
)

// stubReports embeds a nil-dependency Repo so every query degrades, and
// overrides the ones a test cares about.
type stubReports struct {
	*analytics.Repo
	quarters []analytics.QuarterRevenue
}

func (s stubReports) QuarterlyRevenue(context.Context) analytics.Result[[]analytics.QuarterRevenue] {
	return analytics.Result[[]analytics.QuarterRevenue]{Value: s.quarters}
}

func newTestEcho(t *testing.T, reports Reports) (*echo.Echo, *DashboardHandler) {
	t.Helper()
	r, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e := echo.New()
	e.Renderer = r
	return e, NewDashboardHandler(reports, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func serve(e *echo.Echo, h echo.HandlerFunc, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
	c.SetPath(path)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func unavailableRepo() *analytics.Repo {
	return analytics.NewRepo(nil, analytics.SQLite, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewDashboardHandler_PanicsOnNilReports(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewDashboardHandler(nil, nil)
}

func TestHandlers_DegradedDataStillRenders(t *testing.T) {
	e, h := newTestEcho(t, unavailableRepo())

	pages := map[string]echo.HandlerFunc{
		"/dashboard":           h.Dashboard,
		"/revenue/total":       h.TotalRevenue,
		"/revenue/quarterly":   h.QuarterlyRevenue,
		"/revenue/monthly":     h.MonthlyRevenue,
		"/revenue/service":     h.ServiceRevenue,
		"/revenue/seasonal":    h.SeasonalRevenue,
		"/occupancy/daily":     h.DailyOccupancy,
		"/occupancy/monthly":   h.MonthlyOccupancy,
		"/rooms/top":           h.TopRooms,
		"/customers/top":       h.TopCustomers,
		"/customers/high-risk": h.HighRiskCustomers,
		"/customers/retention": h.CustomerRetention,
		"/events/count":        h.EventsByMonth,
		"/events/attendance":   h.Attendance,
		"/events/performance":  h.EventPerformance,
		"/food/avg-spend":      h.FoodSpend,
		"/food/meal-type":      h.MealTypeRevenue,
	}
	for path, fn := range pages {
		rec := serve(e, fn, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "data unavailable") {
			t.Fatalf("%s: degraded page should carry a notice", path)
		}
	}
}

func TestQuarterlyRevenue_Renders(t *testing.T) {
	e, h := newTestEcho(t, stubReports{
		Repo: unavailableRepo(),
		quarters: []analytics.QuarterRevenue{
			{Year: 2024, Quarter: 1, Label: "2024-Q1", Total: 1250.5},
		},
	})

	rec := serve(e, h.QuarterlyRevenue, "/revenue/quarterly")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<td>2024-Q1</td><td>$1,250.50</td>") {
		t.Fatalf("table row missing:\n%s", body)
	}
	if strings.Contains(body, "data unavailable") {
		t.Fatalf("healthy page should not carry a notice")
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Fatalf("content type %q", ct)
	}
}

func TestHealth(t *testing.T) {
	e := echo.New()
	rec := serve(e, Health, "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}
