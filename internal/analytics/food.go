package analytics

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// FoodSpend summarizes settled food and beverage charges.
type FoodSpend struct {
	Guests       int64
	MealCharges  int64
	TotalRevenue float64
	AvgCharge    float64
	AvgPerGuest  float64
}

// MealRevenue is settled F&B revenue for one meal type.
type MealRevenue struct {
	MealType  string
	Charges   int64
	Revenue   float64
	Average   float64
	Customers int64
	Share     float64 // percent of all settled F&B revenue
}

const mealCharges = `
		FROM MealCharges mc
		JOIN Charges c ON c.charge_id = mc.charge_id
		LEFT JOIN Reservations r ON r.reservation_id = c.reservation_id
		WHERE c.status ` + settled

// FoodSpendSummary reports guests, charges and average spend for meals.
func (r *Repo) FoodSpendSummary(ctx context.Context) Result[FoodSpend] {
	q := fmt.Sprintf(`
		SELECT COUNT(DISTINCT r.billed_party_id) AS unique_guests,
		       COUNT(mc.meal_charge_id) AS meal_charges,
		       COALESCE(SUM(c.amount), 0) AS total_fb_revenue,
		       COALESCE(AVG(c.amount), 0) AS avg_fb_charge,
		       COALESCE(SUM(c.amount), 0) * 1.0 / %s AS avg_spend_per_guest`,
		r.dialect.Greatest("COUNT(DISTINCT r.billed_party_id)", "1")) + mealCharges
	return single(ctx, r, "food_spend_summary", q, func(s rowScanner) (FoodSpend, error) {
		var (
			guests, charges     sql.NullInt64
			total               decimal.NullDecimal
			avgCharge, perGuest sql.NullFloat64
		)
		if err := s.Scan(&guests, &charges, &total, &avgCharge, &perGuest); err != nil {
			return FoodSpend{}, err
		}
		return FoodSpend{
			Guests:       count(guests),
			MealCharges:  count(charges),
			TotalRevenue: money(total),
			AvgCharge:    number(avgCharge),
			AvgPerGuest:  number(perGuest),
		}, nil
	})
}

// MealTypeRevenue splits settled F&B revenue by meal type.  Share divides by
// the same filter's grand total; an empty total yields NULL and so 0.
func (r *Repo) MealTypeRevenue(ctx context.Context) Result[[]MealRevenue] {
	q := `
		SELECT mc.meal_type,
		       COUNT(*) AS charge_count,
		       COALESCE(SUM(c.amount), 0) AS total_revenue,
		       COALESCE(AVG(c.amount), 0) AS avg_revenue,
		       COUNT(DISTINCT r.billed_party_id) AS unique_customers,
		       COALESCE(SUM(c.amount), 0) * 100.0 / (
		           SELECT SUM(c2.amount)
		           FROM MealCharges mc2
		           JOIN Charges c2 ON c2.charge_id = mc2.charge_id
		           WHERE c2.status ` + settled + `
		       ) AS revenue_share` + mealCharges + `
		GROUP BY mc.meal_type
		ORDER BY total_revenue DESC`
	return collect(ctx, r, "meal_type_revenue", q, func(s rowScanner) (MealRevenue, error) {
		var (
			mealType           sql.NullString
			charges, customers sql.NullInt64
			revenue            decimal.NullDecimal
			average, share     sql.NullFloat64
		)
		if err := s.Scan(&mealType, &charges, &revenue, &average, &customers, &share); err != nil {
			return MealRevenue{}, err
		}
		return MealRevenue{
			MealType:  text(mealType),
			Charges:   count(charges),
			Revenue:   money(revenue),
			Average:   number(average),
			Customers: count(customers),
			Share:     percent(share),
		}, nil
	})
}
