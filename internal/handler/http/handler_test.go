package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
	"github.com/synapse-hq/synapse-backend-go/internal/handler/http/response"
	"github.com/synapse-hq/synapse-backend-go/internal/repository/memory"
	dashboardService "github.com/synapse-hq/synapse-backend-go/internal/service/dashboard"
	reportService "github.com/synapse-hq/synapse-backend-go/internal/service/report"
	workforceService "github.com/synapse-hq/synapse-backend-go/internal/service/workforce"
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func newTestRouter(t *testing.T) (*chi.Mux, *memory.WorkforceRepository) {
	t.Helper()

	generator := workforceService.NewGenerator(workforceService.Config{
		Size:       30,
		WindowDays: 120,
		Now:        testNow,
	})
	repo := memory.NewWorkforceRepository(generator.Build())

	router := NewRouter(
		RouterConfig{AppEnv: "test", FrontendURL: "http://localhost:3000", LogLevel: slog.LevelError},
		Handlers{
			Workforce: NewWorkforceHandler(repo, fixedNow),
			Leave:     NewLeaveHandler(repo),
			Kudos:     NewKudosHandler(repo, fixedNow),
			Holiday:   NewHolidayHandler(),
			Dashboard: NewDashboardHandler(dashboardService.NewService(repo, fixedNow)),
			Report:    NewReportHandler(reportService.NewService(repo, fixedNow)),
			Assist:    NewAssistHandler(nil),
		},
	)
	return router, repo
}

func doRequest(t *testing.T, router *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestListEmployees(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/employees", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.True(t, resp.Success)

	employees, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, employees, 31, "30 generated plus one prepended pinned employee")
}

func TestListEmployees_DepartmentFilter(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/employees?department=Engineering", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	for _, raw := range resp.Data.([]any) {
		e := raw.(map[string]any)
		assert.Equal(t, "Engineering", e["department"])
	}
}

func TestGetEmployee(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/employees/282", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	e := resp.Data.(map[string]any)
	assert.Equal(t, "Priya Sharma", e["name"])
	assert.Equal(t, "Tech Lead", e["role"])

	rec = doRequest(t, router, http.MethodGet, "/api/v1/employees/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAttendance(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/employees/102/attendance", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	records := resp.Data.([]any)
	assert.NotEmpty(t, records)
	first := records[0].(map[string]any)
	assert.Contains(t, first, "date")
	assert.Contains(t, first, "status")
}

func TestSubmitAndApproveRequest(t *testing.T) {
	router, repo := newTestRouter(t)

	before, err := repo.GetByID("282")
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/employees/282/requests", workforce.SubmitLeaveRequestRequest{
		Type:      "leave",
		StartDate: "2025-07-07",
		EndDate:   "2025-07-08",
		Reason:    "Vacation",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeBody(t, rec)
	created := resp.Data.(map[string]any)
	assert.Equal(t, "Pending", created["status"])
	requestID := created["id"].(string)

	rec = doRequest(t, router, http.MethodPatch, "/api/v1/requests/"+requestID, workforce.UpdateRequestStatusRequest{
		Status: "Approved",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	after, err := repo.GetByID("282")
	require.NoError(t, err)
	assert.Equal(t, before.Stats.LeaveBalance.Used+1, after.Stats.LeaveBalance.Used)

	// A processed request cannot flip again.
	rec = doRequest(t, router, http.MethodPatch, "/api/v1/requests/"+requestID, workforce.UpdateRequestStatusRequest{
		Status: "Rejected",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitRequest_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/employees/282/requests", workforce.SubmitLeaveRequestRequest{
		Type:      "sabbatical",
		StartDate: "07/07/2025",
		EndDate:   "2025-07-08",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "type")
	assert.Contains(t, resp.Error.Details, "start_date")
}

func TestPendingRequestsFilter(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/requests?status=Pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	for _, raw := range resp.Data.([]any) {
		req := raw.(map[string]any)
		assert.Equal(t, "Pending", req["status"])
	}
}

func TestPunchCycle(t *testing.T) {
	router, repo := newTestRouter(t)

	// Drop whatever the generator produced for today so the cycle starts
	// from a clean slate.
	e, err := repo.GetByID("282")
	require.NoError(t, err)
	var kept []workforce.AttendanceRecord
	for _, rec := range e.Attendance {
		if rec.Date.Format("2006-01-02") != "2025-06-02" {
			kept = append(kept, rec)
		}
	}
	e.Attendance = kept
	repo.Upsert(e)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/employees/282/punch-out", nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "punch-out without punch-in must conflict")

	rec = doRequest(t, router, http.MethodPost, "/api/v1/employees/282/punch-in", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody(t, rec).Data.(map[string]any)
	assert.Equal(t, "10:00", created["punch_in"])

	rec = doRequest(t, router, http.MethodPost, "/api/v1/employees/282/punch-in", nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "second punch-in must conflict")

	rec = doRequest(t, router, http.MethodPost, "/api/v1/employees/282/punch-out", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestKudosFeedAndGive(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/kudos", workforce.GiveKudosRequest{
		FromID:  "282",
		ToID:    "102",
		Message: "great demo today",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeBody(t, rec)
	k := resp.Data.(map[string]any)
	assert.Equal(t, "Priya Sharma", k["from"])
	assert.Equal(t, "David Chen", k["to"])

	rec = doRequest(t, router, http.MethodGet, "/api/v1/kudos", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	feed := decodeBody(t, rec).Data.([]any)
	require.NotEmpty(t, feed)

	found := false
	for _, raw := range feed {
		if raw.(map[string]any)["message"] == "great demo today" {
			found = true
		}
	}
	assert.True(t, found, "fresh kudos must appear in the feed")
}

func TestGiveKudos_EmptyMessage(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/kudos", workforce.GiveKudosRequest{
		FromID: "282",
		ToID:   "102",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEmployeeRequests(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/employees/282/requests", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	for _, raw := range resp.Data.([]any) {
		req := raw.(map[string]any)
		assert.Equal(t, "282", req["employee_id"])
		assert.Equal(t, "Priya Sharma", req["employee_name"])
	}
}

func TestListHolidays(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/holidays", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	holidays := resp.Data.([]any)
	require.NotEmpty(t, holidays)
	first := holidays[0].(map[string]any)
	assert.Contains(t, first, "date")
	assert.Contains(t, first, "name")
}

func TestHRDashboard(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/hr", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	data := resp.Data.(map[string]any)
	pulse := data["workforce_pulse"].(map[string]any)
	assert.Equal(t, float64(31), pulse["total_workforce"])
	assert.Contains(t, data, "flight_risk_hotlist")
	assert.Contains(t, data, "department_collaboration")
	assert.Contains(t, data, "upcoming_anniversaries")
}

func TestTodayAttendance(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/attendance-today", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "2025-06-02", data["date"])
}

func TestAttendanceReportDownload(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/reports/attendance.xlsx", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance-2025-06-02.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestAssistUnconfigured(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/assist/chat", map[string]string{
		"employee_id": "282",
		"query":       "How much leave is left?",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/assist/missed-punch", map[string]any{
		"employee_id": "282",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHeartbeat(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
