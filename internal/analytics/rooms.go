package analytics

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// TopRoomsLimit caps the room ranking.
const TopRoomsLimit = 15

// Room is booking volume and room-charge revenue for one room.
type Room struct {
	Number   string
	Building string
	Bookings int64
	Revenue  float64
}

// TopRooms ranks rooms by distinct reservations assigned, then by settled
// room-charge revenue of those reservations.
func (r *Repo) TopRooms(ctx context.Context) Result[[]Room] {
	q := fmt.Sprintf(`
		SELECT rm.room_number,
		       COALESCE(rm.building_name, '') AS building_name,
		       COUNT(DISTINCT ra.reservation_id) AS total_bookings,
		       COALESCE(SUM(rr.revenue), 0) AS total_revenue_generated
		FROM Rooms rm
		JOIN RoomAssignments ra ON ra.room_id = rm.room_id
		LEFT JOIN (
		    SELECT reservation_id, SUM(amount) AS revenue
		    FROM Charges
		    WHERE charge_type = 'room' AND status %s
		    GROUP BY reservation_id
		) rr ON rr.reservation_id = ra.reservation_id
		GROUP BY rm.room_id, rm.room_number, rm.building_name
		ORDER BY total_bookings DESC, total_revenue_generated DESC, rm.room_number
		LIMIT %d`, settled, TopRoomsLimit)
	return collect(ctx, r, "top_rooms", q, func(s rowScanner) (Room, error) {
		var (
			number, building sql.NullString
			bookings         sql.NullInt64
			revenue          decimal.NullDecimal
		)
		if err := s.Scan(&number, &building, &bookings, &revenue); err != nil {
			return Room{}, err
		}
		return Room{
			Number:   text(number),
			Building: text(building),
			Bookings: count(bookings),
			Revenue:  money(revenue),
		}, nil
	})
}
