package view

import (
	"github.com/Jason0922/final-project-hotel/internal/analytics"
)

// FoodSpend renders the F&B spend headline figures.
func FoodSpend(res analytics.Result[analytics.FoodSpend]) Page {
	p := newPage("F&B Spend", "/food/avg-spend")
	p.note(res, "F&B")

	f := res.Value
	p.Cards = append(p.Cards,
		Card{Title: "Avg Spend per Guest", Value: Currency(f.AvgPerGuest), Subtitle: Count(f.Guests) + " guests", Icon: "utensils", Color: "orange"},
		Card{Title: "F&B Revenue", Value: Currency(f.TotalRevenue), Subtitle: Count(f.MealCharges) + " meal charges", Icon: "dollar", Color: "green"},
	)
	p.Tables = append(p.Tables, Table{
		Title:   "F&B spend",
		Columns: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Guests", Count(f.Guests)},
			{"Meal charges", Count(f.MealCharges)},
			{"Total revenue", Currency(f.TotalRevenue)},
			{"Average charge", Currency(f.AvgCharge)},
			{"Average per guest", Currency(f.AvgPerGuest)},
		},
	})
	return p
}

// MealTypeRevenue renders revenue and share per meal type.
func MealTypeRevenue(res analytics.Result[[]analytics.MealRevenue]) Page {
	p := newPage("F&B by Meal Type", "/food/meal-type")
	p.note(res, "Meal type")

	labels := make([]string, 0, len(res.Value))
	shares := make([]float64, 0, len(res.Value))
	rows := make([][]string, 0, len(res.Value))
	for _, m := range res.Value {
		labels = append(labels, m.MealType)
		shares = append(shares, m.Share)
		rows = append(rows, []string{m.MealType, Count(m.Charges), Currency(m.Revenue), Currency(m.Average), Count(m.Customers), Percent(m.Share)})
	}
	p.Charts = append(p.Charts, Chart{
		ID:     "meal-type-share",
		Type:   "pie",
		Title:  "Share of F&B revenue",
		Labels: labels,
		Series: []Series{{Name: "Share", Values: shares}},
		Format: FormatPercent,
	})
	p.Tables = append(p.Tables, Table{
		Title:   "Revenue by meal type",
		Columns: []string{"Meal type", "Charges", "Revenue", "Average", "Customers", "Share"},
		Rows:    rows,
	})
	return p
}
