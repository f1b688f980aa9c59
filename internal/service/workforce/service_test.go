package workforce

import (
	"testing"

	domain "github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{Size: 60, WindowDays: 365, Now: date(2025, 6, 2)}
}

func TestGenerator_Deterministic(t *testing.T) {
	first := NewGenerator(testConfig()).Build()
	second := NewGenerator(testConfig()).Build()
	assert.Equal(t, first, second, "the build must be a pure function of config and pools")
}

func TestGenerator_SizeAndPinned(t *testing.T) {
	employees := NewGenerator(testConfig()).Build()

	// Bulk ids run 101..160, so pinned id 102 replaces in place and 282 is
	// prepended.
	require.Len(t, employees, 61)

	byID := map[string]domain.Employee{}
	for _, e := range employees {
		byID[e.ID] = e
	}

	priya, ok := byID["282"]
	require.True(t, ok)
	assert.Equal(t, "Priya Sharma", priya.Name)
	assert.Equal(t, "Tech Lead", priya.Role)
	assert.Equal(t, domain.DepartmentEngineering, priya.Department)
	assert.Equal(t, "priya.sharma@synapse.corp", priya.Email)

	david, ok := byID["102"]
	require.True(t, ok)
	assert.Equal(t, "David Chen", david.Name)
	assert.Equal(t, domain.DepartmentRnD, david.Department)
	require.NotNil(t, david.FlightRisk)
	assert.Equal(t, 78, david.FlightRisk.Score)
}

func TestGenerator_PinnedRequestsRemapped(t *testing.T) {
	employees := NewGenerator(testConfig()).Build()
	for _, e := range employees {
		if e.ID != "282" && e.ID != "102" {
			continue
		}
		for _, req := range e.Requests {
			assert.Equal(t, e.ID, req.EmployeeID)
			assert.Equal(t, e.Name, req.EmployeeName)
		}
	}
}

func TestGenerator_DerivedLeaveBalance(t *testing.T) {
	for _, e := range NewGenerator(testConfig()).Build() {
		approved := 0
		for _, r := range e.Requests {
			if r.Status == domain.RequestStatusApproved && r.Type == domain.RequestTypeLeave {
				approved++
			}
		}
		assert.Equal(t, approved, e.Stats.LeaveBalance.Used,
			"employee %s: used leave balance must be derived from approved leave requests", e.ID)
		assert.Equal(t, leaveBalanceTotal, e.Stats.LeaveBalance.Total)
	}
}

func TestGenerator_DerivedHalfDays(t *testing.T) {
	for _, e := range NewGenerator(testConfig()).Build() {
		halfDays := 0
		for _, a := range e.Attendance {
			if a.Status == domain.AttendanceStatusHalfDay {
				halfDays++
			}
		}
		assert.Equal(t, halfDays, e.HalfDays, "employee %s", e.ID)
	}
}

func TestGenerator_FlightRiskBounds(t *testing.T) {
	employees := NewGenerator(Config{Size: 200, WindowDays: 90, Now: date(2025, 6, 2)}).Build()

	flagged := 0
	for _, e := range employees {
		if e.FlightRisk == nil {
			continue
		}
		if e.ID == "102" {
			continue // pinned score is hand-authored
		}
		flagged++
		assert.Greater(t, e.FlightRisk.Score, 70, "employee %s", e.ID)
		assert.LessOrEqual(t, e.FlightRisk.Score, 99, "employee %s", e.ID)

		n := len(e.FlightRisk.ContributingFactors)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 3)
		assert.Equal(t, n, len(uniqueStrings(e.FlightRisk.ContributingFactors)))
	}

	// ~10% of 200, with generous slack: the point is "some but not most".
	assert.Greater(t, flagged, 3)
	assert.Less(t, flagged, 60)
}

func TestGenerator_SkillsFromDepartmentPool(t *testing.T) {
	for _, e := range NewGenerator(testConfig()).Build() {
		if e.ID == "282" || e.ID == "102" {
			continue // pinned clones keep their template's skill set
		}
		n := len(e.Skills)
		require.GreaterOrEqual(t, n, 2, "employee %s", e.ID)
		require.LessOrEqual(t, n, 4, "employee %s", e.ID)
		assert.Equal(t, n, len(uniqueStrings(e.Skills)), "employee %s has duplicate skills", e.ID)
		for _, skill := range e.Skills {
			assert.Contains(t, skillsByDepartment[e.Department], skill)
		}
	}
}

func TestGenerator_GoalsAndCollaborationIndex(t *testing.T) {
	for _, e := range NewGenerator(testConfig()).Build() {
		require.Len(t, e.Goals, 1, "employee %s", e.ID)
		goal := e.Goals[0]
		assert.NotEmpty(t, goal.Title)
		require.NotEmpty(t, goal.KeyResults)
		for _, kr := range goal.KeyResults {
			assert.GreaterOrEqual(t, kr.Progress, 20)
			assert.Less(t, kr.Progress, 90)
		}

		assert.GreaterOrEqual(t, e.Stats.CollaborationIndex, 6.0)
		assert.LessOrEqual(t, e.Stats.CollaborationIndex, 10.0)
	}
}

func TestGenerator_KudosFeedSeeded(t *testing.T) {
	employees := NewGenerator(testConfig()).Build()

	total := 0
	for _, e := range employees {
		if e.ID == "282" || e.ID == "102" {
			continue // pinned clones carry their template's kudos
		}
		total += len(e.Kudos)
		for _, k := range e.Kudos {
			assert.Contains(t, k.Message, e.Name)
			assert.Contains(t, k.Message, "thank you")
		}
	}
	// Pinned upserts can displace a bulk record that had received kudos, so
	// the bulk total can fall a little short of the feed size.
	assert.Greater(t, total, 0)
	assert.LessOrEqual(t, total, kudosFeedSize)
}

func TestRoleFor_EmptyPoolFallback(t *testing.T) {
	assert.Equal(t, "Associate", roleFor(domain.Department("Facilities"), "Senior"))
	assert.Equal(t, "Software Engineer", roleFor(domain.DepartmentEngineering, "Unknown Band"))
	assert.Equal(t, "Tech Lead", roleFor(domain.DepartmentEngineering, "Lead"))
}

func uniqueStrings(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
