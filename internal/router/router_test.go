package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Jason0922/final-project-hotel/internal/analytics"
	"github.com/Jason0922/final-project-hotel/internal/analytics/analyticstest"
	"github.com/Jason0922/final-project-hotel/internal/handler"
	"github.com/Jason0922/final-project-hotel/internal/view"
)

func newServer(t *testing.T, logs *bytes.Buffer, seed ...string) *echo.Echo {
	t.Helper()
	db := analyticstest.Open(t)
	analyticstest.Exec(t, db, seed...)

	logger := slog.New(slog.NewJSONHandler(logs, nil))
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e := echo.New()
	e.Renderer = renderer
	Use(e, logger)
	RegisterRoutes(e, handler.NewDashboardHandler(analytics.NewRepo(db, analytics.SQLite, logger), logger))
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestQuarterlyRevenue_EndToEnd(t *testing.T) {
	var logs bytes.Buffer
	e := newServer(t, &logs,
		`INSERT INTO Charges (charge_id, reservation_id, charge_type, amount, status, charge_date) VALUES
			(1, NULL, 'room', 100, 'paid', '2024-01-15'),
			(2, NULL, 'room', 200, 'paid', '2024-05-15'),
			(3, NULL, 'room', 300, 'paid', '2024-08-15')`,
	)

	rec := get(e, "/revenue/quarterly")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, row := range []string{
		"<td>2024-Q1</td><td>$100.00</td>",
		"<td>2024-Q2</td><td>$200.00</td>",
		"<td>2024-Q3</td><td>$300.00</td>",
	} {
		if !strings.Contains(body, row) {
			t.Fatalf("missing row %q", row)
		}
	}
	if !strings.Contains(body, `"labels":["2024-Q1","2024-Q2","2024-Q3"]`) ||
		!strings.Contains(body, `"values":[100,200,300]`) {
		t.Fatalf("chart data missing:\n%s", body)
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatalf("request id header missing")
	}
}

func TestAllRoutesRespond(t *testing.T) {
	var logs bytes.Buffer
	e := newServer(t, &logs)

	paths := []string{"/", "/healthz"}
	for _, item := range view.Nav {
		paths = append(paths, item.Path)
	}
	for _, path := range paths {
		if rec := get(e, path); rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
	}
	if rec := get(e, "/no-such-page"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown route: status %d", rec.Code)
	}
}

func TestAccessLog(t *testing.T) {
	var logs bytes.Buffer
	e := newServer(t, &logs)
	get(e, "/healthz")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry); err != nil {
		t.Fatalf("access log is not one json line: %v\n%s", err, logs.String())
	}
	if entry["msg"] != "request" || entry["uri"] != "/healthz" || entry["status"] != float64(200) {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if id, _ := entry["request_id"].(string); len(id) != 36 {
		t.Fatalf("request id should be a uuid: %v", entry["request_id"])
	}
}

type ctxKey struct{}

// ctxRecorder keeps the context value seen by each log record.
type ctxRecorder struct {
	slog.Handler
	seen *[]any
}

func (h ctxRecorder) Handle(ctx context.Context, r slog.Record) error {
	*h.seen = append(*h.seen, ctx.Value(ctxKey{}))
	return nil
}

func (h ctxRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ctxRecorder{Handler: h.Handler.WithAttrs(attrs), seen: h.seen}
}

func TestAccessLog_UsesRequestContext(t *testing.T) {
	var seen []any
	logger := slog.New(ctxRecorder{Handler: slog.NewTextHandler(io.Discard, nil), seen: &seen})

	e := echo.New()
	e.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), ctxKey{}, "trace-1")))
			return next(c)
		}
	})
	Use(e, logger)
	e.GET("/healthz", handler.Health)
	get(e, "/healthz")

	if len(seen) != 1 || seen[0] != "trace-1" {
		t.Fatalf("access log should see the request context, got %v", seen)
	}
}
