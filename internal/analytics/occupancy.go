package analytics

import (
	"context"
	"database/sql"
	"fmt"
)

// DailyOccupancyWindow is how many days back the daily view reaches.
const DailyOccupancyWindow = 90

// Occupancy is room utilization for one day or month, counted by arrival:
// an assignment contributes to the period containing its start_date only,
// so a multi-night stay is not spread over the nights it covers.
type Occupancy struct {
	Period         string // YYYY-MM-DD or YYYY-MM
	Stays          int64
	RoomsOccupied  int64
	AvailableRooms int64
	Rate           float64 // 0-100
}

// DailyOccupancy reports per-day arrivals against available rooms over the
// last DailyOccupancyWindow days, keyed by assignment start date.
func (r *Repo) DailyOccupancy(ctx context.Context) Result[[]Occupancy] {
	d := r.dialect
	where := "ra.start_date >= " + d.DaysAgo(DailyOccupancyWindow)
	return r.occupancy(ctx, "daily_occupancy", d.DateLabel("ra.start_date"), where)
}

// MonthlyOccupancy reports per-month arrivals against available rooms over
// the full history, keyed by assignment start month.
func (r *Repo) MonthlyOccupancy(ctx context.Context) Result[[]Occupancy] {
	return r.occupancy(ctx, "monthly_occupancy", r.dialect.MonthLabel("ra.start_date"), "ra.start_date IS NOT NULL")
}

// occupancy counts rooms under renovation as unavailable; the rate divisor
// is clamped to one so an empty inventory yields 0 rather than a division
// error.
func (r *Repo) occupancy(ctx context.Context, name, period, where string) Result[[]Occupancy] {
	q := fmt.Sprintf(`
		SELECT %s AS period,
		       COUNT(DISTINCT ra.reservation_id) AS total_stays,
		       COUNT(DISTINCT ra.room_id) AS unique_rooms_occupied,
		       av.available AS total_available_rooms,
		       COUNT(DISTINCT ra.room_id) * 100.0 / %s AS occupancy_rate
		FROM RoomAssignments ra
		CROSS JOIN (
		    SELECT COUNT(*) AS available
		    FROM Rooms
		    WHERE COALESCE(status, '') <> 'renovation'
		) av
		WHERE %s
		GROUP BY period, av.available
		ORDER BY period`,
		period, r.dialect.Greatest("av.available", "1"), where)
	return collect(ctx, r, name, q, func(s rowScanner) (Occupancy, error) {
		var (
			label               sql.NullString
			stays, rooms, avail sql.NullInt64
			rate                sql.NullFloat64
		)
		if err := s.Scan(&label, &stays, &rooms, &avail, &rate); err != nil {
			return Occupancy{}, err
		}
		return Occupancy{
			Period:         text(label),
			Stays:          count(stays),
			RoomsOccupied:  count(rooms),
			AvailableRooms: count(avail),
			Rate:           percent(rate),
		}, nil
	})
}
