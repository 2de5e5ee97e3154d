package view

import (
	"github.com/Jason0922/final-project-hotel/internal/analytics"
)

// TopCustomers renders the highest-revenue billed parties.
func TopCustomers(res analytics.Result[[]analytics.Customer]) Page {
	p := newPage("Top Customers", "/customers/top")
	p.note(res, "Customer")

	rows := make([][]string, 0, len(res.Value))
	for _, c := range res.Value {
		rows = append(rows, []string{c.Name, c.PartyType, Currency(c.Revenue), Count(c.Reservations), c.LastVisitDate})
	}
	p.Cards = append(p.Cards, Card{
		Title:    "Top Customers",
		Value:    Count(int64(len(res.Value))),
		Subtitle: "Parties with settled revenue",
		Icon:     "users",
		Color:    "orange",
	})
	p.Tables = append(p.Tables, Table{
		Title:   "Top customers by revenue",
		Columns: []string{"Customer", "Type", "Revenue", "Reservations", "Last visit"},
		Rows:    rows,
	})
	return p
}

// HighRiskCustomers renders the risk ranking with overdue exposure.
func HighRiskCustomers(res analytics.Result[[]analytics.RiskCustomer]) Page {
	p := newPage("High-Risk Customers", "/customers/high-risk")
	p.note(res, "Customer risk")

	rows := make([][]string, 0, len(res.Value))
	for _, c := range res.Value {
		rows = append(rows, []string{
			c.Name,
			c.PartyType,
			Average(c.RiskScore),
			Average(c.PaymentPromptness),
			Average(c.PastHistory),
			Average(c.Cooperativeness),
			Average(c.Flexibility),
			Currency(c.OverdueTotal),
			Count(c.OverdueBills),
			Count(c.Reservations),
		})
	}
	p.Tables = append(p.Tables, Table{
		Title: "Customers by risk score",
		Columns: []string{
			"Customer", "Type", "Risk score",
			"Payment", "History", "Cooperation", "Flexibility",
			"Overdue", "Overdue bills", "Reservations",
		},
		Rows: rows,
	})
	return p
}

// CustomerRetention renders repeat guests.
func CustomerRetention(res analytics.Result[[]analytics.RetainedGuest]) Page {
	p := newPage("Customer Retention", "/customers/retention")
	p.note(res, "Retention")

	rows := make([][]string, 0, len(res.Value))
	for _, g := range res.Value {
		rows = append(rows, []string{
			g.Name,
			Count(g.Visits),
			g.FirstVisit,
			g.LastVisit,
			Count(g.DaysBetween),
			Count(g.TotalNights),
			Average(g.AvgNightsPerVisit),
		})
	}
	p.Tables = append(p.Tables, Table{
		Title:   "Repeat guests",
		Columns: []string{"Guest", "Visits", "First visit", "Last visit", "Days between", "Nights", "Avg nights"},
		Rows:    rows,
	})
	return p
}
