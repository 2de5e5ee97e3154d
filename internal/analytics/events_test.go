package analytics

import (
	"context"
	"math"
	"testing"

	"github.com/Jason0922/final-project-hotel/internal/analytics/analyticstest"
)

func TestEventQueries_Seeded(t *testing.T) {
	r, db := newTestRepo(t)
	analyticstest.Seed(t, db)
	ctx := context.Background()

	months := r.EventsByMonth(ctx).Value
	if len(months) != 1 {
		t.Fatalf("unexpected months: %+v", months)
	}
	if months[0] != (EventMonth{Month: "2024-02", Events: 1, TotalEstimated: 500, AvgEstimated: 500, Hosts: 1}) {
		t.Fatalf("unexpected month: %+v", months[0])
	}

	att := r.AttendanceSummary(ctx)
	if att.Degraded() {
		t.Fatalf("unexpected error: %v", att.Err)
	}
	want := Attendance{Events: 1, EventRooms: 2, TotalEstimated: 500, AvgEstimated: 500, TotalActual: 800, AvgActual: 400}
	if att.Value != want {
		t.Fatalf("got %+v want %+v", att.Value, want)
	}

	perf := r.EventPerformance(ctx).Value
	if len(perf) != 1 {
		t.Fatalf("unexpected events: %+v", perf)
	}
	wantPerf := EventPerformance{
		Event: "Tech Conference 2024", Host: "Acme Corporation",
		RoomsUsed: 2, SlotsUsed: 2, EstimatedAttendance: 500,
		EatingSlots: 1, NonEatingSlots: 1, GuestReservations: 1, Revenue: 900,
	}
	if perf[0] != wantPerf {
		t.Fatalf("got %+v want %+v", perf[0], wantPerf)
	}
}

func TestEventsByMonth_GroupsHosts(t *testing.T) {
	r, db := newTestRepo(t)
	analyticstest.Exec(t, db,
		`INSERT INTO Events (event_name, host_party_id, start_date, estimated_attendance) VALUES
			('Launch', 1, '2024-05-02', 100),
			('Workshop', 2, '2024-05-20', 50),
			('Gala', 1, '2024-06-01', 300),
			('Undated', 1, NULL, 10)`,
	)

	got := r.EventsByMonth(context.Background()).Value
	if len(got) != 2 {
		t.Fatalf("undated events are skipped: %+v", got)
	}
	if got[0].Month != "2024-05" || got[0].Events != 2 || got[0].Hosts != 2 || got[0].TotalEstimated != 150 || got[0].AvgEstimated != 75 {
		t.Fatalf("unexpected May: %+v", got[0])
	}
	if got[1].Month != "2024-06" || got[1].Events != 1 || got[1].Hosts != 1 {
		t.Fatalf("unexpected June: %+v", got[1])
	}
}

func TestMealTypeRevenue_SharesSumToHundred(t *testing.T) {
	r, db := newTestRepo(t)
	analyticstest.Exec(t, db,
		`INSERT INTO Charges (charge_id, reservation_id, charge_type, amount, status, charge_date) VALUES
			(1, NULL, 'meal', 300, 'paid', '2024-01-01'),
			(2, NULL, 'meal', 700, 'billed', '2024-01-02'),
			(3, NULL, 'meal', 400, 'void', '2024-01-03')`,
		`INSERT INTO MealCharges (charge_id, meal_type) VALUES (1, 'lunch'), (2, 'dinner'), (3, 'lunch')`,
	)

	res := r.MealTypeRevenue(context.Background())
	if res.Degraded() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Value) != 2 {
		t.Fatalf("unexpected rows: %+v", res.Value)
	}
	dinner, lunch := res.Value[0], res.Value[1]
	if dinner.MealType != "dinner" || dinner.Share != 70 || dinner.Revenue != 700 {
		t.Fatalf("unexpected dinner: %+v", dinner)
	}
	if lunch.MealType != "lunch" || lunch.Share != 30 || lunch.Charges != 1 {
		t.Fatalf("unexpected lunch: %+v", lunch)
	}
	if sum := dinner.Share + lunch.Share; math.Abs(sum-100) > 0.01 {
		t.Fatalf("shares sum to %v", sum)
	}
}

func TestFoodSpendSummary_Seeded(t *testing.T) {
	r, db := newTestRepo(t)
	analyticstest.Seed(t, db)

	res := r.FoodSpendSummary(context.Background())
	want := FoodSpend{Guests: 2, MealCharges: 2, TotalRevenue: 300, AvgCharge: 150, AvgPerGuest: 150}
	if res.Degraded() || res.Value != want {
		t.Fatalf("got %+v (err %v) want %+v", res.Value, res.Err, want)
	}
}

func TestTopRooms_Seeded(t *testing.T) {
	r, db := newTestRepo(t)
	analyticstest.Seed(t, db)

	got := r.TopRooms(context.Background()).Value
	want := []Room{
		{Number: "1201", Building: "Main Building", Bookings: 2, Revenue: 1000},
		{Number: "1503", Building: "Tower Wing", Bookings: 1, Revenue: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("unassigned rooms are skipped: %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}
