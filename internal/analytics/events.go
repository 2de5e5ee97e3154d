package analytics

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// EventPerformanceLimit caps the event performance ranking.
const EventPerformanceLimit = 20

// EventMonth aggregates events starting in one month.
type EventMonth struct {
	Month          string
	Events         int64
	TotalEstimated int64
	AvgEstimated   float64
	Hosts          int64
}

// Attendance compares estimated with actual attendance over all events.
type Attendance struct {
	Events         int64
	EventRooms     int64
	TotalEstimated int64
	AvgEstimated   float64
	TotalActual    int64
	AvgActual      float64
}

// EventPerformance summarizes room use and revenue for one event.
type EventPerformance struct {
	Event               string
	Host                string
	RoomsUsed           int64
	SlotsUsed           int64
	EstimatedAttendance int64
	EatingSlots         int64
	NonEatingSlots      int64
	GuestReservations   int64
	Revenue             float64
}

// EventsByMonth counts events, attendance and hosts per start month.
func (r *Repo) EventsByMonth(ctx context.Context) Result[[]EventMonth] {
	q := fmt.Sprintf(`
		SELECT %s AS month,
		       COUNT(DISTINCT e.event_id) AS event_count,
		       COALESCE(SUM(e.estimated_attendance), 0) AS total_estimated,
		       COALESCE(AVG(e.estimated_attendance), 0) AS avg_estimated,
		       COUNT(DISTINCT e.host_party_id) AS host_count
		FROM Events e
		WHERE e.start_date IS NOT NULL
		GROUP BY month
		ORDER BY month`, r.dialect.MonthLabel("e.start_date"))
	return collect(ctx, r, "events_by_month", q, func(s rowScanner) (EventMonth, error) {
		var (
			month                sql.NullString
			events, total, hosts sql.NullInt64
			avg                  sql.NullFloat64
		)
		if err := s.Scan(&month, &events, &total, &avg, &hosts); err != nil {
			return EventMonth{}, err
		}
		return EventMonth{
			Month:          text(month),
			Events:         count(events),
			TotalEstimated: count(total),
			AvgEstimated:   number(avg),
			Hosts:          count(hosts),
		}, nil
	})
}

// AttendanceSummary reports global estimated (per event) and actual (per
// event room) attendance.  Scalar subqueries keep the two sides from
// multiplying each other.
func (r *Repo) AttendanceSummary(ctx context.Context) Result[Attendance] {
	const q = `
		SELECT (SELECT COUNT(*) FROM Events) AS events,
		       (SELECT COUNT(*) FROM EventRooms) AS event_rooms,
		       (SELECT COALESCE(SUM(estimated_attendance), 0) FROM Events) AS total_estimated,
		       (SELECT COALESCE(AVG(estimated_attendance), 0) FROM Events) AS avg_estimated,
		       (SELECT COALESCE(SUM(actual_attendance), 0) FROM EventRooms) AS total_actual,
		       (SELECT COALESCE(AVG(actual_attendance), 0) FROM EventRooms) AS avg_actual`
	return single(ctx, r, "attendance_summary", q, func(s rowScanner) (Attendance, error) {
		var (
			events, rooms, totalEst, totalAct sql.NullInt64
			avgEst, avgAct                    sql.NullFloat64
		)
		if err := s.Scan(&events, &rooms, &totalEst, &avgEst, &totalAct, &avgAct); err != nil {
			return Attendance{}, err
		}
		return Attendance{
			Events:         count(events),
			EventRooms:     count(rooms),
			TotalEstimated: count(totalEst),
			AvgEstimated:   number(avgEst),
			TotalActual:    count(totalAct),
			AvgActual:      number(avgAct),
		}, nil
	})
}

// EventPerformance ranks events by revenue from the guest reservations they
// generated.
func (r *Repo) EventPerformance(ctx context.Context) Result[[]EventPerformance] {
	q := fmt.Sprintf(`
		SELECT e.event_name,
		       COALESCE(bp.name, '') AS host_organization,
		       COUNT(DISTINCT er.room_id) AS rooms_used,
		       COUNT(er.event_room_id) AS time_slots_used,
		       COALESCE(e.estimated_attendance, 0) AS estimated_attendance,
		       COALESCE(SUM(CASE WHEN er.event_room_id IS NOT NULL AND COALESCE(er.eating, 0) = 1 THEN 1 ELSE 0 END), 0) AS eating_slots,
		       COALESCE(SUM(CASE WHEN er.event_room_id IS NOT NULL AND COALESCE(er.eating, 0) = 0 THEN 1 ELSE 0 END), 0) AS non_eating_slots,
		       (SELECT COUNT(*) FROM Reservations gr WHERE gr.event_id = e.event_id) AS guest_reservations_generated,
		       (SELECT COALESCE(SUM(c.amount), 0)
		          FROM Charges c
		          JOIN Reservations gr ON gr.reservation_id = c.reservation_id
		         WHERE gr.event_id = e.event_id AND c.status %s) AS total_event_revenue
		FROM Events e
		LEFT JOIN BilledParties bp ON bp.party_id = e.host_party_id
		LEFT JOIN EventRooms er ON er.event_id = e.event_id
		GROUP BY e.event_id, e.event_name, bp.name, e.estimated_attendance
		ORDER BY total_event_revenue DESC, e.event_name
		LIMIT %d`, settled, EventPerformanceLimit)
	return collect(ctx, r, "event_performance", q, func(s rowScanner) (EventPerformance, error) {
		var (
			event, host                           sql.NullString
			rooms, slots, estimated, eating, rest sql.NullInt64
			reservations                          sql.NullInt64
			revenue                               decimal.NullDecimal
		)
		if err := s.Scan(&event, &host, &rooms, &slots, &estimated, &eating, &rest, &reservations, &revenue); err != nil {
			return EventPerformance{}, err
		}
		return EventPerformance{
			Event:               text(event),
			Host:                text(host),
			RoomsUsed:           count(rooms),
			SlotsUsed:           count(slots),
			EstimatedAttendance: count(estimated),
			EatingSlots:         count(eating),
			NonEatingSlots:      count(rest),
			GuestReservations:   count(reservations),
			Revenue:             money(revenue),
		}, nil
	})
}
