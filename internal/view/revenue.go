package view

import (
	"fmt"

	"github.com/Jason0922/final-project-hotel/internal/analytics"
)

// TotalRevenue renders the settled revenue headline.
func TotalRevenue(res analytics.Result[float64]) Page {
	p := newPage("Total Revenue", "/revenue/total")
	p.note(res, "Revenue")
	p.Cards = append(p.Cards, Card{
		Title:    "Total Revenue",
		Value:    Currency(res.Value),
		Subtitle: "Billed and paid charges",
		Icon:     "dollar",
		Color:    "green",
	})
	p.Tables = append(p.Tables, Table{
		Title:   "Revenue",
		Columns: []string{"Metric", "Value"},
		Rows:    [][]string{{"Total revenue", Currency(res.Value)}},
	})
	return p
}

// QuarterlyRevenue renders paid revenue per quarter.
func QuarterlyRevenue(res analytics.Result[[]analytics.QuarterRevenue]) Page {
	p := newPage("Quarterly Revenue", "/revenue/quarterly")
	p.note(res, "Quarterly revenue")

	labels := make([]string, 0, len(res.Value))
	totals := make([]float64, 0, len(res.Value))
	rows := make([][]string, 0, len(res.Value))
	var sum float64
	for _, q := range res.Value {
		labels = append(labels, q.Label)
		totals = append(totals, q.Total)
		rows = append(rows, []string{q.Label, Currency(q.Total)})
		sum += q.Total
	}
	p.Cards = append(p.Cards, Card{
		Title:    "Paid Revenue",
		Value:    Currency(sum),
		Subtitle: fmt.Sprintf("Across %d quarters", len(res.Value)),
		Icon:     "calendar",
		Color:    "blue",
	})
	p.Charts = append(p.Charts, Chart{
		ID:     "quarterly-revenue",
		Type:   "bar",
		Title:  "Paid revenue by quarter",
		Labels: labels,
		Series: []Series{{Name: "Revenue", Values: totals}},
		Format: FormatCurrency,
	})
	p.Tables = append(p.Tables, Table{
		Title:   "Quarterly revenue",
		Columns: []string{"Quarter", "Revenue"},
		Rows:    rows,
	})
	return p
}

// MonthlyRevenue renders the revenue trend by month.
func MonthlyRevenue(res analytics.Result[[]analytics.MonthRevenue]) Page {
	p := newPage("Monthly Revenue", "/revenue/monthly")
	p.note(res, "Monthly revenue")

	labels := make([]string, 0, len(res.Value))
	revenue := make([]float64, 0, len(res.Value))
	rows := make([][]string, 0, len(res.Value))
	for _, m := range res.Value {
		labels = append(labels, m.Month)
		revenue = append(revenue, m.Revenue)
		rows = append(rows, []string{m.Month, Currency(m.Revenue), Count(m.UniqueCustomers), Count(m.Charges)})
	}
	p.Charts = append(p.Charts, Chart{
		ID:     "monthly-revenue",
		Type:   "line",
		Title:  "Revenue trend",
		Labels: labels,
		Series: []Series{{Name: "Revenue", Values: revenue}},
		Format: FormatCurrency,
	})
	p.Tables = append(p.Tables, Table{
		Title:   "Monthly revenue",
		Columns: []string{"Month", "Revenue", "Customers", "Charges"},
		Rows:    rows,
	})
	return p
}

// ServiceRevenue renders revenue per charge type.
func ServiceRevenue(res analytics.Result[[]analytics.ServiceRevenue]) Page {
	p := newPage("Revenue by Service", "/revenue/service")
	p.note(res, "Service revenue")

	labels := make([]string, 0, len(res.Value))
	revenue := make([]float64, 0, len(res.Value))
	rows := make([][]string, 0, len(res.Value))
	for _, s := range res.Value {
		labels = append(labels, s.Service)
		revenue = append(revenue, s.Revenue)
		rows = append(rows, []string{s.Service, Count(s.Charges), Currency(s.Revenue), Currency(s.Average)})
	}
	p.Charts = append(p.Charts, Chart{
		ID:     "service-revenue",
		Type:   "doughnut",
		Title:  "Revenue by service",
		Labels: labels,
		Series: []Series{{Name: "Revenue", Values: revenue}},
		Format: FormatCurrency,
	})
	p.Tables = append(p.Tables, Table{
		Title:   "Revenue by service",
		Columns: []string{"Service", "Charges", "Revenue", "Average charge"},
		Rows:    rows,
	})
	return p
}

// SeasonalRevenue renders revenue per season and year.
func SeasonalRevenue(res analytics.Result[[]analytics.SeasonRevenue]) Page {
	p := newPage("Seasonal Revenue", "/revenue/seasonal")
	p.note(res, "Seasonal revenue")

	labels := make([]string, 0, len(res.Value))
	revenue := make([]float64, 0, len(res.Value))
	rows := make([][]string, 0, len(res.Value))
	for _, s := range res.Value {
		label := fmt.Sprintf("%s %d", s.Season, s.Year)
		labels = append(labels, label)
		revenue = append(revenue, s.Revenue)
		rows = append(rows, []string{label, Count(s.Charges), Currency(s.Revenue), Currency(s.Average), Count(s.UniqueCustomers)})
	}
	p.Charts = append(p.Charts, Chart{
		ID:     "seasonal-revenue",
		Type:   "bar",
		Title:  "Revenue by season",
		Labels: labels,
		Series: []Series{{Name: "Revenue", Values: revenue}},
		Format: FormatCurrency,
	})
	p.Tables = append(p.Tables, Table{
		Title:   "Seasonal revenue",
		Columns: []string{"Season", "Charges", "Revenue", "Average charge", "Customers"},
		Rows:    rows,
	})
	return p
}
