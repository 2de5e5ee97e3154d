package analytics

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// settled restricts charges to those that count as revenue.
const settled = "IN ('billed', 'paid')"

// QuarterRevenue is paid revenue for one calendar quarter.
type QuarterRevenue struct {
	Year    int64
	Quarter int64
	Label   string // YYYY-Qn
	Total   float64
}

// MonthRevenue is settled revenue for one month.
type MonthRevenue struct {
	Month           string // YYYY-MM
	Revenue         float64
	UniqueCustomers int64
	Charges         int64
}

// ServiceRevenue is settled revenue for one charge type (meal, phone, ...).
type ServiceRevenue struct {
	Service string
	Charges int64
	Revenue float64
	Average float64
}

// SeasonRevenue is settled revenue for one season of one year.
type SeasonRevenue struct {
	Season          string
	Year            int64
	Charges         int64
	Revenue         float64
	Average         float64
	UniqueCustomers int64
}

// TotalRevenue sums every billed or paid charge.
func (r *Repo) TotalRevenue(ctx context.Context) Result[float64] {
	q := `SELECT COALESCE(SUM(amount), 0) FROM Charges WHERE status ` + settled
	return single(ctx, r, "total_revenue", q, func(s rowScanner) (float64, error) {
		var total decimal.NullDecimal
		if err := s.Scan(&total); err != nil {
			return 0, err
		}
		return money(total), nil
	})
}

// QuarterlyRevenue sums paid charges per calendar quarter, oldest first.
func (r *Repo) QuarterlyRevenue(ctx context.Context) Result[[]QuarterRevenue] {
	d := r.dialect
	q := fmt.Sprintf(`
		SELECT %s AS yr,
		       %s AS qtr,
		       COALESCE(SUM(amount), 0) AS total
		FROM Charges
		WHERE status = 'paid' AND charge_date IS NOT NULL
		GROUP BY yr, qtr
		ORDER BY yr, qtr`,
		d.Year("charge_date"), d.Quarter("charge_date"))
	return collect(ctx, r, "quarterly_revenue", q, func(s rowScanner) (QuarterRevenue, error) {
		var (
			year, quarter sql.NullInt64
			total         decimal.NullDecimal
		)
		if err := s.Scan(&year, &quarter, &total); err != nil {
			return QuarterRevenue{}, err
		}
		row := QuarterRevenue{Year: count(year), Quarter: count(quarter), Total: money(total)}
		row.Label = quarterLabel(row.Year, row.Quarter)
		return row, nil
	})
}

// MonthlyRevenue reports settled revenue, paying customers and charge count
// per month.
func (r *Repo) MonthlyRevenue(ctx context.Context) Result[[]MonthRevenue] {
	q := fmt.Sprintf(`
		SELECT %s AS month,
		       COALESCE(SUM(c.amount), 0) AS total_revenue,
		       COUNT(DISTINCT r.billed_party_id) AS unique_customers,
		       COUNT(c.charge_id) AS total_charges
		FROM Charges c
		LEFT JOIN Reservations r ON r.reservation_id = c.reservation_id
		WHERE c.status %s AND c.charge_date IS NOT NULL
		GROUP BY month
		ORDER BY month`,
		r.dialect.MonthLabel("c.charge_date"), settled)
	return collect(ctx, r, "monthly_revenue", q, func(s rowScanner) (MonthRevenue, error) {
		var (
			month              sql.NullString
			revenue            decimal.NullDecimal
			customers, charges sql.NullInt64
		)
		if err := s.Scan(&month, &revenue, &customers, &charges); err != nil {
			return MonthRevenue{}, err
		}
		return MonthRevenue{
			Month:           text(month),
			Revenue:         money(revenue),
			UniqueCustomers: count(customers),
			Charges:         count(charges),
		}, nil
	})
}

// ServiceRevenue breaks settled revenue down by charge type, largest first.
func (r *Repo) ServiceRevenue(ctx context.Context) Result[[]ServiceRevenue] {
	q := `
		SELECT charge_type,
		       COUNT(*) AS number_of_charges,
		       COALESCE(SUM(amount), 0) AS total_revenue,
		       COALESCE(AVG(amount), 0) AS average_charge
		FROM Charges
		WHERE status ` + settled + `
		GROUP BY charge_type
		ORDER BY total_revenue DESC`
	return collect(ctx, r, "service_revenue", q, func(s rowScanner) (ServiceRevenue, error) {
		var (
			service sql.NullString
			charges sql.NullInt64
			revenue decimal.NullDecimal
			average sql.NullFloat64
		)
		if err := s.Scan(&service, &charges, &revenue, &average); err != nil {
			return ServiceRevenue{}, err
		}
		return ServiceRevenue{
			Service: text(service),
			Charges: count(charges),
			Revenue: money(revenue),
			Average: number(average),
		}, nil
	})
}

// SeasonalRevenue groups settled revenue by meteorological season, ordered
// chronologically.  December belongs to the following year's winter, so
// Dec 2023 through Feb 2024 is Winter 2024.
func (r *Repo) SeasonalRevenue(ctx context.Context) Result[[]SeasonRevenue] {
	d := r.dialect
	m := d.MonthNumber("c.charge_date")
	q := fmt.Sprintf(`
		SELECT CASE
		         WHEN %[1]s IN (12, 1, 2) THEN 'Winter'
		         WHEN %[1]s IN (3, 4, 5) THEN 'Spring'
		         WHEN %[1]s IN (6, 7, 8) THEN 'Summer'
		         ELSE 'Fall'
		       END AS season,
		       CASE WHEN %[1]s = 12 THEN %[2]s + 1 ELSE %[2]s END AS yr,
		       COUNT(c.charge_id) AS total_charges,
		       COALESCE(SUM(c.amount), 0) AS total_revenue,
		       COALESCE(AVG(c.amount), 0) AS avg_charge_amount,
		       COUNT(DISTINCT r.billed_party_id) AS unique_customers
		FROM Charges c
		LEFT JOIN Reservations r ON r.reservation_id = c.reservation_id
		WHERE c.status %[3]s AND c.charge_date IS NOT NULL
		GROUP BY yr, season
		ORDER BY yr, MIN(CASE
		                   WHEN %[1]s IN (12, 1, 2) THEN 1
		                   WHEN %[1]s IN (3, 4, 5) THEN 2
		                   WHEN %[1]s IN (6, 7, 8) THEN 3
		                   ELSE 4
		                 END)`,
		m, d.Year("c.charge_date"), settled)
	return collect(ctx, r, "seasonal_revenue", q, func(s rowScanner) (SeasonRevenue, error) {
		var (
			season                   sql.NullString
			year, charges, customers sql.NullInt64
			revenue                  decimal.NullDecimal
			average                  sql.NullFloat64
		)
		if err := s.Scan(&season, &year, &charges, &revenue, &average, &customers); err != nil {
			return SeasonRevenue{}, err
		}
		return SeasonRevenue{
			Season:          text(season),
			Year:            count(year),
			Charges:         count(charges),
			Revenue:         money(revenue),
			Average:         number(average),
			UniqueCustomers: count(customers),
		}, nil
	})
}
