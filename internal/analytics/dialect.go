package analytics

import (
	"fmt"
	"strconv"
)

// Dialect supplies the few date and scalar expressions that differ between
// the supported SQL engines.  Each hook takes and returns SQL text.
type Dialect struct {
	Name        string
	DateLabel   func(expr string) string // YYYY-MM-DD text
	MonthLabel  func(expr string) string // YYYY-MM text
	Year        func(expr string) string
	MonthNumber func(expr string) string
	Quarter     func(expr string) string
	DaysAgo     func(days int) string // date cutoff relative to today
	Greatest    func(a, b string) string
	DaysBetween func(from, to string) string
}

// MySQL is the dialect of the production hotel database.
var MySQL = Dialect{
	Name:        "mysql",
	DateLabel:   func(e string) string { return "DATE_FORMAT(" + e + ", '%Y-%m-%d')" },
	MonthLabel:  func(e string) string { return "DATE_FORMAT(" + e + ", '%Y-%m')" },
	Year:        func(e string) string { return "YEAR(" + e + ")" },
	MonthNumber: func(e string) string { return "MONTH(" + e + ")" },
	Quarter:     func(e string) string { return "QUARTER(" + e + ")" },
	DaysAgo:     func(n int) string { return "(CURDATE() - INTERVAL " + strconv.Itoa(n) + " DAY)" },
	Greatest:    func(a, b string) string { return "GREATEST(" + a + ", " + b + ")" },
	DaysBetween: func(from, to string) string { return "DATEDIFF(" + to + ", " + from + ")" },
}

// SQLite is used for the local file data source and test fixtures.  Dates
// are stored as ISO-8601 text.
var SQLite = Dialect{
	Name:        "sqlite3",
	DateLabel:   func(e string) string { return "strftime('%Y-%m-%d', " + e + ")" },
	MonthLabel:  func(e string) string { return "strftime('%Y-%m', " + e + ")" },
	Year:        func(e string) string { return "CAST(strftime('%Y', " + e + ") AS INTEGER)" },
	MonthNumber: func(e string) string { return "CAST(strftime('%m', " + e + ") AS INTEGER)" },
	Quarter:     func(e string) string { return "((CAST(strftime('%m', " + e + ") AS INTEGER) + 2) / 3)" },
	DaysAgo:     func(n int) string { return "date('now', '-" + strconv.Itoa(n) + " days')" },
	Greatest:    func(a, b string) string { return "MAX(" + a + ", " + b + ")" },
	DaysBetween: func(from, to string) string {
		return "CAST(julianday(" + to + ") - julianday(" + from + ") AS INTEGER)"
	},
}

// DialectFor returns the dialect registered for a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "mysql":
		return MySQL, nil
	case "sqlite3", "sqlite":
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("analytics: no dialect for driver %q", driver)
}
