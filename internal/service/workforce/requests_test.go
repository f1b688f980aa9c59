package workforce

import (
	"testing"
	"time"

	domain "github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateFixture(t *testing.T, seed int64, now time.Time) ([]domain.AttendanceRecord, []domain.LeaveRequest) {
	t.Helper()
	attendance := GenerateAttendance(seed, now.AddDate(-1, 0, 0), now)
	requests := GenerateRequests(seed, "102", "David Chen", domain.DepartmentRnD, attendance, now)
	return attendance, requests
}

func TestGenerateRequests_Deterministic(t *testing.T) {
	now := date(2025, 6, 2)
	_, first := generateFixture(t, 102, now)
	_, second := generateFixture(t, 102, now)
	assert.Equal(t, first, second)
}

func TestGenerateRequests_StartDateIsOnLeaveDay(t *testing.T) {
	now := date(2025, 6, 2)
	for seed := int64(101); seed < 131; seed++ {
		attendance, requests := generateFixture(t, seed, now)

		onLeave := map[string]bool{}
		for _, rec := range attendance {
			if rec.Status == domain.AttendanceStatusOnLeave {
				onLeave[rec.Date.Format("2006-01-02")] = true
			}
		}

		for _, req := range requests {
			assert.True(t, onLeave[req.StartDate.Format("2006-01-02")],
				"seed %d: request %s starts on a day without an on-leave record", seed, req.ID)
		}
	}
}

func TestGenerateRequests_Cap(t *testing.T) {
	now := date(2025, 6, 2)
	for seed := int64(101); seed < 201; seed++ {
		_, requests := generateFixture(t, seed, now)
		assert.LessOrEqual(t, len(requests), maxGeneratedRequests)
	}
}

func TestGenerateRequests_HistoricalRequestsSettled(t *testing.T) {
	now := date(2025, 6, 2)
	for seed := int64(101); seed < 201; seed++ {
		_, requests := generateFixture(t, seed, now)
		for _, req := range requests {
			if req.StartDate.Year() < now.Year() {
				assert.Equal(t, domain.RequestStatusApproved, req.Status,
					"seed %d: request %s from a prior year must be settled", seed, req.ID)
			}
		}
	}
}

func TestGenerateRequests_Shape(t *testing.T) {
	now := date(2025, 6, 2)
	for seed := int64(101); seed < 151; seed++ {
		_, requests := generateFixture(t, seed, now)
		for _, req := range requests {
			assert.Equal(t, domain.RequestTypeLeave, req.Type)
			assert.NotEmpty(t, req.Reason)
			assert.Contains(t, leaveReasons, req.Reason)
			assert.False(t, req.EndDate.Before(req.StartDate))
			span := int(req.EndDate.Sub(req.StartDate).Hours() / 24)
			assert.LessOrEqual(t, span, 3)
		}
	}
}

func TestGenerateRequests_EmptyAttendance(t *testing.T) {
	requests := GenerateRequests(102, "102", "David Chen", domain.DepartmentRnD, nil, date(2025, 6, 2))
	require.Empty(t, requests)
}
