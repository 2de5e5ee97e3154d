// Package view turns analytics results into the page model rendered by the
// dashboard template. It only formats; every number comes from analytics.
package view

import "fmt"

// Axis formats understood by the chart script.
const (
	FormatCurrency = "currency"
	FormatPercent  = "percent"
	FormatCount    = "count"
)

// Page is everything one dashboard template render needs.
type Page struct {
	Title   string
	Path    string
	Cards   []Card
	Charts  []Chart
	Tables  []Table
	Notices []string
}

// Card is a headline metric.
type Card struct {
	Title    string
	Value    string
	Subtitle string
	Icon     string
	Color    string
}

// Chart is serialized into the page and drawn client-side.
type Chart struct {
	ID     string   `json:"id"`
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
	Format string   `json:"format"`
}

// Series is one dataset of a chart.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Table is a header row plus pre-formatted cells.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// NavItem links one report page.
type NavItem struct {
	Path  string
	Label string
}

// Nav lists the report pages in menu order.
var Nav = []NavItem{
	{"/dashboard", "Dashboard"},
	{"/revenue/total", "Total revenue"},
	{"/revenue/quarterly", "Quarterly revenue"},
	{"/revenue/monthly", "Monthly revenue"},
	{"/revenue/service", "Revenue by service"},
	{"/revenue/seasonal", "Seasonal revenue"},
	{"/occupancy/daily", "Daily occupancy"},
	{"/occupancy/monthly", "Monthly occupancy"},
	{"/rooms/top", "Top rooms"},
	{"/customers/top", "Top customers"},
	{"/customers/high-risk", "High-risk customers"},
	{"/customers/retention", "Customer retention"},
	{"/events/count", "Events by month"},
	{"/events/attendance", "Attendance"},
	{"/events/performance", "Event performance"},
	{"/food/avg-spend", "F&B spend"},
	{"/food/meal-type", "F&B by meal type"},
}

func newPage(title, path string) Page {
	return Page{
		Title:   title,
		Path:    path,
		Cards:   []Card{},
		Charts:  []Chart{},
		Tables:  []Table{},
		Notices: []string{},
	}
}

// degradable is satisfied by every analytics.Result.
type degradable interface{ Degraded() bool }

// note adds an operator-visible notice when res came back degraded.
func (p *Page) note(res degradable, what string) {
	if res.Degraded() {
		p.Notices = append(p.Notices, fmt.Sprintf("%s data unavailable", what))
	}
}

// merge appends the content of parts onto p, keeping p's title and path.
func (p *Page) merge(parts ...Page) {
	for _, part := range parts {
		p.Cards = append(p.Cards, part.Cards...)
		p.Charts = append(p.Charts, part.Charts...)
		p.Tables = append(p.Tables, part.Tables...)
		p.Notices = append(p.Notices, part.Notices...)
	}
}
