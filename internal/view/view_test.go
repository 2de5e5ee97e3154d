package view

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Jason0922/final-project-hotel/internal/analytics"
)

func TestFormatting(t *testing.T) {
	cases := []struct{ got, want string }{
		{Currency(0), "$0.00"},
		{Currency(1234.56), "$1,234.56"},
		{Currency(1234567.891), "$1,234,567.89"},
		{Currency(999.999), "$1,000.00"},
		{Currency(-42.5), "-$42.50"},
		{Percent(65.34), "65.3%"},
		{Percent(100), "100.0%"},
		{Count(1500), "1500"},
		{Average(2.26), "2.3"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q want %q", c.got, c.want)
		}
	}
}

func TestQuarterlyRevenuePage(t *testing.T) {
	p := QuarterlyRevenue(analytics.Result[[]analytics.QuarterRevenue]{Value: []analytics.QuarterRevenue{
		{Year: 2024, Quarter: 1, Label: "2024-Q1", Total: 100},
		{Year: 2024, Quarter: 2, Label: "2024-Q2", Total: 200},
		{Year: 2024, Quarter: 3, Label: "2024-Q3", Total: 300},
	}})

	if len(p.Notices) != 0 {
		t.Fatalf("unexpected notices: %v", p.Notices)
	}
	if p.Cards[0].Value != "$600.00" {
		t.Fatalf("card: %+v", p.Cards[0])
	}
	chart := p.Charts[0]
	if strings.Join(chart.Labels, ",") != "2024-Q1,2024-Q2,2024-Q3" || chart.Format != FormatCurrency {
		t.Fatalf("chart: %+v", chart)
	}
	if vals := chart.Series[0].Values; vals[0] != 100 || vals[1] != 200 || vals[2] != 300 {
		t.Fatalf("series: %v", vals)
	}
	if rows := p.Tables[0].Rows; len(rows) != 3 || rows[1][0] != "2024-Q2" || rows[1][1] != "$200.00" {
		t.Fatalf("rows: %v", rows)
	}
}

func TestDegradedResultAddsNotice(t *testing.T) {
	p := TotalRevenue(analytics.Result[float64]{Err: analytics.ErrUnavailable})
	if len(p.Notices) != 1 || p.Notices[0] != "Revenue data unavailable" {
		t.Fatalf("notices: %v", p.Notices)
	}
	if p.Cards[0].Value != "$0.00" {
		t.Fatalf("degraded metrics render as zero: %+v", p.Cards[0])
	}

	empty := TopCustomers(analytics.Result[[]analytics.Customer]{Value: []analytics.Customer{}})
	if len(empty.Notices) != 0 {
		t.Fatalf("legitimately empty results are not notices: %v", empty.Notices)
	}
}

func TestOccupancyPage_AverageRate(t *testing.T) {
	p := MonthlyOccupancy(analytics.Result[[]analytics.Occupancy]{Value: []analytics.Occupancy{
		{Period: "2024-01", Rate: 50},
		{Period: "2024-02", Rate: 75},
	}})
	if p.Cards[0].Value != "62.5%" {
		t.Fatalf("average occupancy: %+v", p.Cards[0])
	}
	if p.Charts[0].ID != "occupancy-month" || p.Charts[0].Format != FormatPercent {
		t.Fatalf("chart: %+v", p.Charts[0])
	}
	if got := DailyOccupancy(analytics.Result[[]analytics.Occupancy]{}).Cards[0].Value; got != "0.0%" {
		t.Fatalf("empty occupancy: %s", got)
	}
}

func TestDashboard_CombinesSectionsAndNotices(t *testing.T) {
	down := errors.New("down")
	p := Dashboard(Summary{
		TotalRevenue:     analytics.Result[float64]{Value: 1500},
		MonthlyOccupancy: analytics.Result[[]analytics.Occupancy]{Value: []analytics.Occupancy{{Period: "2024-01", Rate: 50}}},
		TopCustomers:     analytics.Result[[]analytics.Customer]{Value: []analytics.Customer{{Name: "Acme Corporation", Revenue: 900}}},
		TopRooms:         analytics.Result[[]analytics.Room]{Err: down},
	})

	titles := make([]string, 0, len(p.Cards))
	for _, c := range p.Cards {
		titles = append(titles, c.Title+"="+c.Value)
	}
	if got := strings.Join(titles, ";"); got != "Total Revenue=$1,500.00;Average Occupancy=50.0%;Top Customers=1" {
		t.Fatalf("cards: %s", got)
	}
	if len(p.Notices) != 1 || p.Notices[0] != "Room data unavailable" {
		t.Fatalf("notices: %v", p.Notices)
	}
	ids := map[string]bool{}
	for _, c := range p.Charts {
		if ids[c.ID] {
			t.Fatalf("duplicate chart id %s", c.ID)
		}
		ids[c.ID] = true
	}
	if !ids["monthly-revenue"] || !ids["top-rooms"] {
		t.Fatalf("charts: %v", ids)
	}
}

func TestRenderer_RendersPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	p := MealTypeRevenue(analytics.Result[[]analytics.MealRevenue]{Value: []analytics.MealRevenue{
		{MealType: "dinner", Charges: 1, Revenue: 700, Average: 700, Customers: 1, Share: 70},
		{MealType: "lunch", Charges: 1, Revenue: 300, Average: 300, Customers: 1, Share: 30},
	}})
	p.Notices = append(p.Notices, "Meal type data <unavailable>")

	var buf bytes.Buffer
	c := echo.New().NewContext(httptest.NewRequest("GET", "/food/meal-type", nil), httptest.NewRecorder())
	if err := r.Render(&buf, PageTemplate, p, c); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<title>F&amp;B by Meal Type | Hotel Analytics</title>",
		`<li class="active"><a href="/food/meal-type">`,
		"<td>dinner</td><td>1</td><td>$700.00</td>",
		"<td>70.0%</td>",
		`"id":"meal-type-share"`,
		"Meal type data &lt;unavailable&gt;",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestRenderer_EmptyTable(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, PageTemplate, HighRiskCustomers(analytics.Result[[]analytics.RiskCustomer]{}), nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `<td colspan="10">No data</td>`) {
		t.Fatalf("empty table placeholder missing")
	}
}
