package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldcal/models"
	"fieldcal/services/calendar"

	"github.com/gin-gonic/gin"
)

// stubService answers from canned values and records the last call.
type stubService struct {
	calendar.CalendarService

	session  *calendar.Session
	entries  []models.ScheduleEntry
	err      error
	lastCall string
	lastArgs []any
	calls    []string
}

func (s *stubService) record(name string, args ...any) (*calendar.Session, error) {
	s.lastCall = name
	s.lastArgs = args
	s.calls = append(s.calls, name)
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func (s *stubService) StartSession(_ context.Context, mode calendar.ViewMode, anchor string) (*calendar.Session, error) {
	return s.record("StartSession", mode, anchor)
}

func (s *stubService) GetSession(_ context.Context, id string) (*calendar.Session, error) {
	return s.record("GetSession", id)
}

func (s *stubService) Navigate(_ context.Context, id string, dir calendar.Direction) (*calendar.Session, error) {
	return s.record("Navigate", id, dir)
}

func (s *stubService) ToggleTeam(_ context.Context, id, teamID string, visible bool) (*calendar.Session, error) {
	return s.record("ToggleTeam", id, teamID, visible)
}

func (s *stubService) View(_ context.Context, id string) (*calendar.SessionView, error) {
	sess, err := s.record("View", id)
	if err != nil {
		return nil, err
	}
	view := &calendar.SessionView{Mode: sess.Mode}
	switch sess.Mode {
	case calendar.ModeDay:
		view.Day = &models.DayView{Date: "2025-09-15"}
	case calendar.ModeWeek:
		view.Week = &models.WeekView{}
	default:
		view.Month = &models.MonthView{}
	}
	return view, nil
}

func (s *stubService) MonthView(_ context.Context, id string) (*models.MonthView, error) {
	if _, err := s.record("MonthView", id); err != nil {
		return nil, err
	}
	return &models.MonthView{}, nil
}

func (s *stubService) DayView(_ context.Context, id string) (*models.DayView, error) {
	if _, err := s.record("DayView", id); err != nil {
		return nil, err
	}
	return &models.DayView{Date: "2025-09-15"}, nil
}

func (s *stubService) CreateSchedule(_ context.Context, input models.ScheduleInput) (*models.ScheduleEntry, error) {
	s.lastCall = "CreateSchedule"
	if s.err != nil {
		return nil, s.err
	}
	return &models.ScheduleEntry{ID: "new", CustomerName: input.CustomerName}, nil
}

func (s *stubService) DeleteSchedule(_ context.Context, id string) error {
	s.lastCall = "DeleteSchedule"
	s.lastArgs = []any{id}
	return s.err
}

func newTestRouter(svc calendar.CalendarService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cal := NewCalendarHandler(svc)
	sched := NewScheduleHandler(svc)
	r.POST("/sessions", cal.StartSessionHandler)
	r.GET("/sessions/:sessionID", cal.GetSessionHandler)
	r.GET("/sessions/:sessionID/view", cal.ViewHandler)
	r.POST("/sessions/:sessionID/navigate", cal.NavigateHandler)
	r.PUT("/sessions/:sessionID/filter/team", cal.ToggleTeamHandler)
	r.POST("/schedules", sched.CreateScheduleHandler)
	r.DELETE("/schedules/:scheduleID", sched.DeleteScheduleHandler)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func testSession() *calendar.Session {
	return &calendar.Session{ID: "s1", Mode: calendar.ModeMonth, Anchor: "2025-09-15"}
}

func TestStartSessionWithoutBody(t *testing.T) {
	svc := &stubService{session: testSession()}
	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/sessions", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastCall != "StartSession" {
		t.Fatalf("expected StartSession call, got %q", svc.lastCall)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	svc := &stubService{err: calendar.ErrSessionNotFound}
	rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/sessions/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestViewFollowsSessionMode(t *testing.T) {
	sess := testSession()
	sess.Mode = calendar.ModeDay
	svc := &stubService{session: sess}
	rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/sessions/s1/view", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.calls) != 1 || svc.calls[0] != "View" {
		t.Fatalf("expected a single View call, got %v", svc.calls)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["mode"] != "day" || body["day"] == nil || body["month"] != nil {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestViewSessionNotFound(t *testing.T) {
	svc := &stubService{err: calendar.ErrSessionNotFound}
	rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/sessions/missing/view", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestNavigateRequiresDirection(t *testing.T) {
	svc := &stubService{session: testSession()}
	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/sessions/s1/navigate", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.lastCall != "" {
		t.Fatalf("service should not be called, got %q", svc.lastCall)
	}
}

func TestNavigateInvalidDirection(t *testing.T) {
	svc := &stubService{err: calendar.ErrInvalidDirection}
	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/sessions/s1/navigate", map[string]string{"direction": "sideways"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestToggleTeamPassesVisibility(t *testing.T) {
	svc := &stubService{session: testSession()}
	rec := doJSON(t, newTestRouter(svc), http.MethodPut, "/sessions/s1/filter/team", map[string]any{"id": "t2", "visible": false})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastCall != "ToggleTeam" || svc.lastArgs[1] != "t2" || svc.lastArgs[2] != false {
		t.Fatalf("unexpected call %s %v", svc.lastCall, svc.lastArgs)
	}
}

func TestToggleTeamRejectsMissingFlag(t *testing.T) {
	svc := &stubService{session: testSession()}
	rec := doJSON(t, newTestRouter(svc), http.MethodPut, "/sessions/s1/filter/team", map[string]any{"id": "t2"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateScheduleValidationError(t *testing.T) {
	svc := &stubService{err: &calendar.ValidationError{Field: "customerName", Message: "is required"}}
	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/schedules", models.ScheduleInput{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateScheduleCreated(t *testing.T) {
	svc := &stubService{}
	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/schedules", models.ScheduleInput{CustomerName: "Tanaka"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestDeleteScheduleErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{calendar.ErrScheduleNotFound, http.StatusNotFound},
		{fmt.Errorf("mongo down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		svc := &stubService{err: tc.err}
		rec := doJSON(t, newTestRouter(svc), http.MethodDelete, "/schedules/x1", nil)
		if rec.Code != tc.want {
			t.Errorf("err %v: expected %d, got %d", tc.err, tc.want, rec.Code)
		}
	}
}
