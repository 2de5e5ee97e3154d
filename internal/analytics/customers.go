package analytics

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// Result limits for the customer rankings.
const (
	TopCustomersLimit      = 20
	HighRiskCustomersLimit = 50
	RetentionLimit         = 20
)

// Customer is a billed party ranked by settled revenue.
type Customer struct {
	Name          string
	PartyType     string // guest or organization
	Revenue       float64
	Reservations  int64
	LastVisitDate string // YYYY-MM-DD
}

// RiskCustomer is a billed party ranked by weighted qualification risk.
type RiskCustomer struct {
	Name              string
	PartyType         string
	PaymentPromptness float64
	PastHistory       float64
	Cooperativeness   float64
	Flexibility       float64
	RiskScore         float64 // 0-100, higher is riskier
	OverdueTotal      float64
	OverdueBills      int64
	Reservations      int64
}

// RetainedGuest is a returning guest with visit history.
type RetainedGuest struct {
	Name              string
	Visits            int64
	FirstVisit        string
	LastVisit         string
	DaysBetween       int64
	TotalNights       int64
	AvgNightsPerVisit float64
}

// TopCustomers ranks billed parties with positive settled revenue.
func (r *Repo) TopCustomers(ctx context.Context) Result[[]Customer] {
	q := fmt.Sprintf(`
		SELECT bp.name,
		       bp.party_type,
		       COALESCE(SUM(c.amount), 0) AS total_revenue,
		       COUNT(DISTINCT r.reservation_id) AS total_reservations,
		       %s AS last_visit_date
		FROM BilledParties bp
		JOIN Reservations r ON r.billed_party_id = bp.party_id
		LEFT JOIN Charges c ON c.reservation_id = r.reservation_id AND c.status %s
		GROUP BY bp.party_id, bp.name, bp.party_type
		HAVING COALESCE(SUM(c.amount), 0) > 0
		ORDER BY total_revenue DESC
		LIMIT %d`,
		r.dialect.DateLabel("MAX(r.check_in_date)"), settled, TopCustomersLimit)
	return collect(ctx, r, "top_customers", q, func(s rowScanner) (Customer, error) {
		var (
			name, partyType, lastVisit sql.NullString
			revenue                    decimal.NullDecimal
			reservations               sql.NullInt64
		)
		if err := s.Scan(&name, &partyType, &revenue, &reservations, &lastVisit); err != nil {
			return Customer{}, err
		}
		return Customer{
			Name:          text(name),
			PartyType:     text(partyType),
			Revenue:       money(revenue),
			Reservations:  count(reservations),
			LastVisitDate: text(lastVisit),
		}, nil
	})
}

// HighRiskCustomers ranks qualified parties by
// 0.4(100-payment) + 0.3(100-history) + 0.2(100-cooperativeness) + 0.1(100-flexibility).
// A missing score counts as zero.
func (r *Repo) HighRiskCustomers(ctx context.Context) Result[[]RiskCustomer] {
	q := fmt.Sprintf(`
		SELECT bp.name,
		       bp.party_type,
		       COALESCE(cq.payment_promptness, 0),
		       COALESCE(cq.past_history, 0),
		       COALESCE(cq.cooperativeness, 0),
		       COALESCE(cq.flexibility, 0),
		       ROUND(0.4 * (100 - COALESCE(cq.payment_promptness, 0))
		           + 0.3 * (100 - COALESCE(cq.past_history, 0))
		           + 0.2 * (100 - COALESCE(cq.cooperativeness, 0))
		           + 0.1 * (100 - COALESCE(cq.flexibility, 0)), 2) AS risk_score,
		       COALESCE(ob.overdue_total, 0) AS overdue_total,
		       COALESCE(ob.overdue_bills, 0) AS overdue_bills,
		       COALESCE(rc.reservations, 0) AS total_reservations
		FROM CustomerQualifications cq
		JOIN BilledParties bp ON bp.party_id = cq.party_id
		LEFT JOIN (
		    SELECT party_id, SUM(total_amount) AS overdue_total, COUNT(*) AS overdue_bills
		    FROM Bills
		    WHERE status = 'overdue'
		    GROUP BY party_id
		) ob ON ob.party_id = cq.party_id
		LEFT JOIN (
		    SELECT billed_party_id, COUNT(DISTINCT reservation_id) AS reservations
		    FROM Reservations
		    GROUP BY billed_party_id
		) rc ON rc.billed_party_id = cq.party_id
		ORDER BY risk_score DESC, bp.name
		LIMIT %d`, HighRiskCustomersLimit)
	return collect(ctx, r, "high_risk_customers", q, func(s rowScanner) (RiskCustomer, error) {
		var (
			name, partyType              sql.NullString
			payment, history, coop, flex sql.NullFloat64
			risk                         sql.NullFloat64
			overdue                      decimal.NullDecimal
			overdueBills, reservations   sql.NullInt64
		)
		if err := s.Scan(&name, &partyType, &payment, &history, &coop, &flex, &risk, &overdue, &overdueBills, &reservations); err != nil {
			return RiskCustomer{}, err
		}
		return RiskCustomer{
			Name:              text(name),
			PartyType:         text(partyType),
			PaymentPromptness: number(payment),
			PastHistory:       number(history),
			Cooperativeness:   number(coop),
			Flexibility:       number(flex),
			RiskScore:         percent(risk),
			OverdueTotal:      money(overdue),
			OverdueBills:      count(overdueBills),
			Reservations:      count(reservations),
		}, nil
	})
}

// CustomerRetention lists guests with more than one visit, most loyal first.
func (r *Repo) CustomerRetention(ctx context.Context) Result[[]RetainedGuest] {
	d := r.dialect
	nights := d.DaysBetween("r.check_in_date", "r.check_out_date")
	q := fmt.Sprintf(`
		SELECT bp.name,
		       COUNT(DISTINCT r.reservation_id) AS total_visits,
		       %s AS first_visit,
		       %s AS last_visit,
		       %s AS days_between_first_last,
		       COALESCE(SUM(%s), 0) AS total_nights,
		       COALESCE(AVG(%s), 0) AS avg_nights_per_visit
		FROM BilledParties bp
		JOIN Reservations r ON r.billed_party_id = bp.party_id
		WHERE bp.party_type = 'guest' AND r.check_in_date IS NOT NULL
		GROUP BY bp.party_id, bp.name
		HAVING COUNT(DISTINCT r.reservation_id) > 1
		ORDER BY total_visits DESC, total_nights DESC
		LIMIT %d`,
		d.DateLabel("MIN(r.check_in_date)"),
		d.DateLabel("MAX(r.check_in_date)"),
		d.DaysBetween("MIN(r.check_in_date)", "MAX(r.check_in_date)"),
		nights, nights, RetentionLimit)
	return collect(ctx, r, "customer_retention", q, func(s rowScanner) (RetainedGuest, error) {
		var (
			name, first, last         sql.NullString
			visits, span, totalNights sql.NullInt64
			avgNights                 sql.NullFloat64
		)
		if err := s.Scan(&name, &visits, &first, &last, &span, &totalNights, &avgNights); err != nil {
			return RetainedGuest{}, err
		}
		return RetainedGuest{
			Name:              text(name),
			Visits:            count(visits),
			FirstVisit:        text(first),
			LastVisit:         text(last),
			DaysBetween:       count(span),
			TotalNights:       count(totalNights),
			AvgNightsPerVisit: number(avgNights),
		}, nil
	})
}
