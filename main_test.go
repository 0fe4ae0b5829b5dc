package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meetsync/core/database"
	"meetsync/core/middleware"
	"meetsync/modules/availability"
	"meetsync/modules/event"
	"meetsync/modules/user"

	"github.com/labstack/echo/v4"
)

func setupTestServer(t *testing.T) (*echo.Echo, func()) {
	t.Helper()

	db, err := database.InitSQLite(":memory:")
	if err != nil {
		t.Fatalf("InitSQLite failed: %v", err)
	}
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	e := echo.New()
	mw := middleware.NewMiddleware()
	mw.Setup(e)

	userSvc := user.Init(e, db, mw)
	eventSvc := event.Init(e, db, mw)
	availability.Init(e, db, mw, userSvc, eventSvc)

	return e, func() { db.Close() }
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLogin_CreatedThenExists(t *testing.T) {
	e, cleanup := setupTestServer(t)
	defer cleanup()

	rec := doJSON(t, e, http.MethodPost, "/api/users/login", `{"name":"Ann"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var first struct {
		Status string `json:"status"`
		User   struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if first.Status != "Created" {
		t.Errorf("Expected status Created, got %s", first.Status)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/users/login", `{"name":"Ann"}`)
	var second struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if second.Status != "Exists" {
		t.Errorf("Expected status Exists, got %s", second.Status)
	}
}

func TestLogin_BlankName(t *testing.T) {
	e, cleanup := setupTestServer(t)
	defer cleanup()

	rec := doJSON(t, e, http.MethodPost, "/api/users/login", `{"name":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for blank name, got %d", rec.Code)
	}
}

func TestGetEventDetails_UnknownPublicID(t *testing.T) {
	e, cleanup := setupTestServer(t)
	defer cleanup()

	rec := doJSON(t, e, http.MethodGet, "/api/events/doesnotexist", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown public id, got %d", rec.Code)
	}
}

func TestAvailability_UnknownEventIs404(t *testing.T) {
	e, cleanup := setupTestServer(t)
	defer cleanup()

	rec := doJSON(t, e, http.MethodPost, "/api/users/login", `{"name":"Ann"}`)
	var login struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("Failed to decode login: %v", err)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/events/doesnotexist/availability",
		`{"user_id":1,"start_date":"2025-07-10","end_date":"2025-07-10","times_of_day":["morning"]}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown event, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestScenario_AnnAndBob(t *testing.T) {
	e, cleanup := setupTestServer(t)
	defer cleanup()

	login := func(name string) int64 {
		rec := doJSON(t, e, http.MethodPost, "/api/users/login", `{"name":"`+name+`"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("Login %s: expected 200, got %d", name, rec.Code)
		}
		var resp struct {
			User struct {
				ID int64 `json:"id"`
			} `json:"user"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode login: %v", err)
		}
		return resp.User.ID
	}

	annID := login("Ann")
	bobID := login("Bob")

	rec := doJSON(t, e, http.MethodPost, "/api/events",
		`{"name":"grill u Janka","description":"witam","earliest":"2025-07-05","latest":"2025-09-30"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Create event: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		PublicID string `json:"public_id"`
		Earliest string `json:"earliest"`
		Latest   string `json:"latest"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode event: %v", err)
	}
	if created.Earliest != "2025-07-05" || created.Latest != "2025-09-30" {
		t.Errorf("Expected date range echoed back, got %s..%s", created.Earliest, created.Latest)
	}

	addBody := func(userID int64) string {
		return `{"user_id":` + jsonInt(userID) + `,"start_date":"2025-07-10","end_date":"2025-07-12","times_of_day":["morning"]}`
	}

	rec = doJSON(t, e, http.MethodPost, "/api/events/"+created.PublicID+"/availability", addBody(annID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Add availability: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	details := fetchDetails(t, e, created.PublicID)
	for _, day := range []string{"2025-07-10", "2025-07-11", "2025-07-12"} {
		if details[day]["morning"] != "Ann" {
			t.Errorf("Expected %s/morning = 'Ann', got '%s'", day, details[day]["morning"])
		}
	}

	rec = doJSON(t, e, http.MethodPost, "/api/events/"+created.PublicID+"/availability", addBody(bobID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Add availability for Bob: expected 201, got %d", rec.Code)
	}

	details = fetchDetails(t, e, created.PublicID)
	for _, day := range []string{"2025-07-10", "2025-07-11", "2025-07-12"} {
		names := details[day]["morning"]
		if !strings.Contains(names, "Ann") || !strings.Contains(names, "Bob") {
			t.Errorf("Expected both names under %s/morning, got '%s'", day, names)
		}
	}

	rec = doJSON(t, e, http.MethodDelete, "/api/events/"+created.PublicID+"/availability", addBody(annID))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Remove availability: expected 204, got %d", rec.Code)
	}

	details = fetchDetails(t, e, created.PublicID)
	if details["2025-07-10"]["morning"] != "Bob" {
		t.Errorf("Expected only 'Bob' after Ann's removal, got '%s'", details["2025-07-10"]["morning"])
	}

	rec = doJSON(t, e, http.MethodDelete, "/api/events/"+created.PublicID+"/my-availability",
		`{"user_id":`+jsonInt(bobID)+`}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Clear availability: expected 204, got %d", rec.Code)
	}

	details = fetchDetails(t, e, created.PublicID)
	if len(details) != 0 {
		t.Errorf("Expected empty details after full clear, got %v", details)
	}
}

func fetchDetails(t *testing.T, e *echo.Echo, publicID string) map[string]map[string]string {
	t.Helper()

	rec := doJSON(t, e, http.MethodGet, "/api/events/"+publicID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Get event details: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		UnavailabilityDetails map[string]map[string]string `json:"unavailability_details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode details: %v", err)
	}
	return resp.UnavailabilityDetails
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
