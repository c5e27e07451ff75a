package event

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
)

func asUser(id string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", id)
		return c.Next()
	}
}

func requireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
	}
}

func TestCreateEventHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO events`).
		WithArgs(pgxmock.AnyArg(), "user-1", "Show", "", "music", "123 Main St",
			28.55, -81.38, pgxmock.AnyArg(), pgxmock.AnyArg(), "PUBLIC", false, false, "").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	app := fiber.New()
	RegisterRoutes(app.Group("/events"), NewService(mock, nil), asUser("user-1"))

	lat, lng := 28.55, -81.38
	startsAt := time.Now().Add(time.Hour)
	endsAt := startsAt.Add(2 * time.Hour)
	body, _ := json.Marshal(CreateRequest{
		Title: "Show", Category: "music", Address: "123 Main St",
		Lat: &lat, Lng: &lng, StartsAt: startsAt, EndsAt: &endsAt,
	})
	req := httptest.NewRequest(http.MethodPost, "/events/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("create event status: %v %d", err, resp.StatusCode)
	}
}

func TestCreateEventMissingField(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/events"), NewService(nil, nil), asUser("user-1"))

	req := httptest.NewRequest(http.MethodPost, "/events/", bytes.NewReader([]byte(`{"title":"Show"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request, got %d", resp.StatusCode)
	}
}

func TestCreateEventUnauthorized(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/events"), NewService(nil, nil), requireAuth())

	req := httptest.NewRequest(http.MethodPost, "/events/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got %d", resp.StatusCode)
	}
}

func TestRSVPHandlerInvalidStatus(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/events"), NewService(nil, nil), asUser("user-1"))

	req := httptest.NewRequest(http.MethodPost, "/events/ev-1/rsvp", bytes.NewReader([]byte(`{"status":"MAYBE"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request, got %d", resp.StatusCode)
	}
}

func TestGetEventWithGoingCount(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, created_by, title`).
		WithArgs("ev-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_by", "title", "description",
			"category", "address", "lat", "lng", "starts_at", "ends_at", "visibility",
			"is_18_plus", "is_21_plus", "cover_url", "created_at"}).
			AddRow("ev-1", "user-1", "Show", "", "music", "123 Main St",
				28.55, -81.38, now.Add(time.Hour), now.Add(3*time.Hour), "PUBLIC",
				false, false, "", now))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rsvps`).
		WithArgs("ev-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	app := fiber.New()
	RegisterRoutes(app.Group("/events"), NewService(mock, nil), asUser("user-1"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events/ev-1", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("get event status: %v", err)
	}

	var payload struct {
		Event      Event `json:"event"`
		GoingCount int   `json:"going_count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Event.ID != "ev-1" || payload.GoingCount != 7 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestGetEventNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, created_by, title`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	app := fiber.New()
	RegisterRoutes(app.Group("/events"), NewService(mock, nil), asUser("user-1"))

	req := httptest.NewRequest(http.MethodGet, "/events/missing", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected not found, got %d", resp.StatusCode)
	}
}
