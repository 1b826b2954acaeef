package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/auth"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/stats"
	"github.com/staffhub-id/attendance-backend-go/internal/handler/http/response"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

// stubAttendanceService records the identity and inputs it was called
// with and returns canned results.
type stubAttendanceService struct {
	clockInResult attendance.AttendanceResponse
	clockInErr    error
	updateResult  attendance.AttendanceResponse
	updateErr     error

	gotIdentity auth.Identity
	gotUpdate   attendance.UpdateAttendanceRequest
}

func (s *stubAttendanceService) ClockIn(_ context.Context, ident auth.Identity) (attendance.AttendanceResponse, error) {
	s.gotIdentity = ident
	return s.clockInResult, s.clockInErr
}

func (s *stubAttendanceService) ClockOut(_ context.Context, ident auth.Identity) (attendance.AttendanceResponse, error) {
	s.gotIdentity = ident
	return attendance.AttendanceResponse{}, s.clockInErr
}

func (s *stubAttendanceService) UpdateAttendance(_ context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	s.gotUpdate = req
	return s.updateResult, s.updateErr
}

func (s *stubAttendanceService) GetMyAttendance(_ context.Context, ident auth.Identity, _ attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	s.gotIdentity = ident
	return attendance.ListAttendanceResponse{Page: 1, Limit: 20}, nil
}

func (s *stubAttendanceService) ListAttendance(_ context.Context, _ attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return attendance.ListAttendanceResponse{Page: 1, Limit: 20}, nil
}

type stubStatsService struct {
	result stats.DailyStatsResponse
}

func (s *stubStatsService) GetDailyStats(context.Context, string) (stats.DailyStatsResponse, error) {
	return s.result, nil
}

func newTestRouter(attSvc attendance.AttendanceService, statsSvc stats.StatsService) (http.Handler, jwt.Service) {
	jwtSvc := jwt.NewJWTService(handlerTestSecret)
	router := NewRouter(
		jwtSvc,
		NewAttendanceHandler(attSvc),
		NewStatsHandler(statsSvc),
		"http://localhost:3000",
		"test",
	)
	return router, jwtSvc
}

func mintToken(t *testing.T, jwtSvc jwt.Service, employeeID string, isAdmin bool) string {
	t.Helper()
	_, tokenString, err := jwtSvc.JWTAuth().Encode(map[string]interface{}{
		"employee_id": employeeID,
		"is_admin":    isAdmin,
		"type":        "access",
	})
	require.NoError(t, err)
	return tokenString
}

func doRequest(router http.Handler, method, target, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestClockIn_Success(t *testing.T) {
	clockIn := "09:10"
	svc := &stubAttendanceService{
		clockInResult: attendance.AttendanceResponse{
			ID:         "rec-1",
			EmployeeID: "emp-1",
			Date:       "2024-03-11",
			ClockIn:    &clockIn,
			Status:     "on_time",
		},
	}
	router, jwtSvc := newTestRouter(svc, &stubStatsService{})
	token := mintToken(t, jwtSvc, "emp-1", false)

	rec := doRequest(router, http.MethodPost, "/api/v1/attendance/clock-in", token, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Clock in successful", resp.Message)
	// identity comes from the verified token, never the request body
	assert.Equal(t, auth.Identity{EmployeeID: "emp-1", IsAdmin: false}, svc.gotIdentity)
}

func TestClockIn_NoToken(t *testing.T) {
	router, _ := newTestRouter(&stubAttendanceService{}, &stubStatsService{})

	rec := doRequest(router, http.MethodPost, "/api/v1/attendance/clock-in", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClockIn_WrongTokenType(t *testing.T) {
	router, jwtSvc := newTestRouter(&stubAttendanceService{}, &stubStatsService{})
	_, tokenString, err := jwtSvc.JWTAuth().Encode(map[string]interface{}{
		"employee_id": "emp-1",
		"type":        "refresh",
	})
	require.NoError(t, err)

	rec := doRequest(router, http.MethodPost, "/api/v1/attendance/clock-in", tokenString, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClockIn_AlreadyClockedIn(t *testing.T) {
	svc := &stubAttendanceService{clockInErr: attendance.ErrAlreadyClockedIn}
	router, jwtSvc := newTestRouter(svc, &stubStatsService{})
	token := mintToken(t, jwtSvc, "emp-1", false)

	rec := doRequest(router, http.MethodPost, "/api/v1/attendance/clock-in", token, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestClockOut_NotClockedInYet(t *testing.T) {
	svc := &stubAttendanceService{clockInErr: attendance.ErrNotClockedInYet}
	router, jwtSvc := newTestRouter(svc, &stubStatsService{})
	token := mintToken(t, jwtSvc, "emp-1", false)

	rec := doRequest(router, http.MethodPost, "/api/v1/attendance/clock-out", token, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMyAttendance_Success(t *testing.T) {
	svc := &stubAttendanceService{}
	router, jwtSvc := newTestRouter(svc, &stubStatsService{})
	token := mintToken(t, jwtSvc, "emp-7", false)

	rec := doRequest(router, http.MethodGet, "/api/v1/attendance/me?status=late&page=2", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-7", svc.gotIdentity.EmployeeID)
}

func TestList_RequiresAdmin(t *testing.T) {
	router, jwtSvc := newTestRouter(&stubAttendanceService{}, &stubStatsService{})
	token := mintToken(t, jwtSvc, "emp-1", false)

	rec := doRequest(router, http.MethodGet, "/api/v1/attendance/", token, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)
}

func TestList_AdminSucceeds(t *testing.T) {
	router, jwtSvc := newTestRouter(&stubAttendanceService{}, &stubStatsService{})
	token := mintToken(t, jwtSvc, "admin-1", true)

	rec := doRequest(router, http.MethodGet, "/api/v1/attendance/?date=2024-03-11", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdate_Success(t *testing.T) {
	svc := &stubAttendanceService{
		updateResult: attendance.AttendanceResponse{ID: "rec-1", Status: "permit"},
	}
	router, jwtSvc := newTestRouter(svc, &stubStatsService{})
	token := mintToken(t, jwtSvc, "admin-1", true)

	body, _ := json.Marshal(map[string]string{"status": "permit"})
	rec := doRequest(router, http.MethodPut, "/api/v1/attendance/rec-1", token, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	// path id wins over anything in the body
	assert.Equal(t, "rec-1", svc.gotUpdate.ID)
	require.NotNil(t, svc.gotUpdate.Status)
	assert.Equal(t, "permit", *svc.gotUpdate.Status)
}

func TestUpdate_RecordNotFound(t *testing.T) {
	svc := &stubAttendanceService{updateErr: attendance.ErrRecordNotFound}
	router, jwtSvc := newTestRouter(svc, &stubStatsService{})
	token := mintToken(t, jwtSvc, "admin-1", true)

	body, _ := json.Marshal(map[string]string{"status": "permit"})
	rec := doRequest(router, http.MethodPut, "/api/v1/attendance/missing", token, body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdate_MalformedBody(t *testing.T) {
	router, jwtSvc := newTestRouter(&stubAttendanceService{}, &stubStatsService{})
	token := mintToken(t, jwtSvc, "admin-1", true)

	rec := doRequest(router, http.MethodPut, "/api/v1/attendance/rec-1", token, []byte("{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdate_NonAdminForbidden(t *testing.T) {
	router, jwtSvc := newTestRouter(&stubAttendanceService{}, &stubStatsService{})
	token := mintToken(t, jwtSvc, "emp-1", false)

	body, _ := json.Marshal(map[string]string{"status": "permit"})
	rec := doRequest(router, http.MethodPut, "/api/v1/attendance/rec-1", token, body)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetDailyStats_Admin(t *testing.T) {
	statsSvc := &stubStatsService{result: stats.DailyStatsResponse{
		TotalEmployees: 10,
		PresentToday:   6,
		Late:           2,
		OnLeave:        4,
		Date:           "2024-03-11",
	}}
	router, jwtSvc := newTestRouter(&stubAttendanceService{}, statsSvc)
	token := mintToken(t, jwtSvc, "admin-1", true)

	rec := doRequest(router, http.MethodGet, "/api/v1/attendance/stats?date=2024-03-11", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(10), data["total_employees"])
	assert.Equal(t, float64(4), data["on_leave"])
}
