// Package analyticstest provides temporary SQLite hotel databases for tests.
package analyticstest

import (
	"database/sql"
	_ "embed"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Open creates an empty hotel database in t's temp dir.  It is closed when
// the test ends.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "hotel.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

// Exec runs each statement against db, failing the test on the first error.
func Exec(t testing.TB, db *sql.DB, stmts ...string) {
	t.Helper()
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
}

// Seed loads a small hotel: two parties, rooms, stays in 2024, an event and
// meal charges.  Totals that tests rely on:
//
//	settled revenue  1500.00 (Acme 900.00, John Smith 600.00)
//	paid revenue     1100.00 (2024-Q1 600.00, 2024-Q2 500.00)
//	meal revenue      300.00 (breakfast 100.00, dinner 200.00)
func Seed(t testing.TB, db *sql.DB) {
	t.Helper()
	Exec(t, db,
		`INSERT INTO BilledParties (party_id, name, party_type) VALUES
			(1, 'Acme Corporation', 'organization'),
			(2, 'John Smith', 'guest')`,
		`INSERT INTO Events (event_id, event_name, host_party_id, start_date, end_date, estimated_attendance) VALUES
			(1, 'Tech Conference 2024', 1, '2024-02-10', '2024-02-12', 500)`,
		`INSERT INTO Reservations (reservation_id, billed_party_id, event_id, check_in_date, check_out_date) VALUES
			(1, 1, 1, '2024-02-10', '2024-02-12'),
			(2, 2, NULL, '2024-01-05', '2024-01-08'),
			(3, 2, NULL, '2024-04-20', '2024-04-22')`,
		`INSERT INTO Rooms (room_id, room_number, building_name, status) VALUES
			(1, '1201', 'Main Building', 'available'),
			(2, '1503', 'Tower Wing', 'available'),
			(3, '2101', 'Luxury Tower', 'renovation')`,
		`INSERT INTO RoomAssignments (assignment_id, reservation_id, room_id, start_date, end_date) VALUES
			(1, 1, 1, '2024-02-10', '2024-02-12'),
			(2, 2, 2, '2024-01-05', '2024-01-08'),
			(3, 3, 1, '2024-04-20', '2024-04-22')`,
		`INSERT INTO Charges (charge_id, reservation_id, charge_type, amount, status, charge_date) VALUES
			(1, 1, 'room', 600.00, 'paid', '2024-02-12'),
			(2, 1, 'meal', 200.00, 'billed', '2024-02-11'),
			(3, 1, 'business_service', 100.00, 'billed', '2024-02-11'),
			(4, 2, 'room', 400.00, 'cancelled', '2024-01-08'),
			(5, 2, 'meal', 100.00, 'billed', '2024-01-06'),
			(6, 3, 'room', 400.00, 'paid', '2024-04-22'),
			(7, 3, 'phone', 100.00, 'paid', '2024-04-21')`,
		`INSERT INTO MealCharges (meal_charge_id, charge_id, meal_type) VALUES
			(1, 2, 'dinner'),
			(2, 5, 'breakfast')`,
		`INSERT INTO EventRooms (event_room_id, event_id, room_id, slot_start, slot_end, eating, actual_attendance) VALUES
			(1, 1, 1, '2024-02-10 09:00', '2024-02-10 12:00', 0, 420),
			(2, 1, 2, '2024-02-10 12:00', '2024-02-10 14:00', 1, 380)`,
		`INSERT INTO CustomerQualifications (party_id, payment_promptness, past_history, cooperativeness, flexibility) VALUES
			(1, 90, 80, 70, 60),
			(2, 100, 100, 100, 100)`,
		`INSERT INTO Bills (bill_id, party_id, total_amount, status, due_date) VALUES
			(1, 1, 300.00, 'overdue', '2024-03-01'),
			(2, 2, 100.00, 'paid', '2024-01-10')`,
	)
}
