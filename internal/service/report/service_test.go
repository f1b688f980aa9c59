package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
	"github.com/synapse-hq/synapse-backend-go/internal/repository/memory"
	excelize "github.com/xuri/excelize/v2"
)

func fixedNow() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }

func testRepo() *memory.WorkforceRepository {
	return memory.NewWorkforceRepository([]workforce.Employee{
		{
			ID: "101", Name: "Aarav Patel", Role: "Software Engineer",
			Department: workforce.DepartmentEngineering,
			Email:      "aarav.patel101@synapse.corp",
			HalfDays:   2,
			Stats: workforce.Stats{
				LeaveBalance:       workforce.LeaveBalance{Used: 3, Total: 20},
				CollaborationIndex: 8.2,
			},
			FlightRisk: &workforce.FlightRisk{Score: 81, ContributingFactors: []string{"Low recent kudos count"}},
			Requests: []workforce.LeaveRequest{
				{ID: "req-101-1", Status: workforce.RequestStatusPending, Type: workforce.RequestTypeLeave},
			},
		},
		{
			ID: "102", Name: "Mei Tanaka", Role: "Account Executive",
			Department: workforce.DepartmentSales,
			Email:      "mei.tanaka102@synapse.corp",
			Stats:      workforce.Stats{LeaveBalance: workforce.LeaveBalance{Total: 20}, CollaborationIndex: 7.5},
		},
	})
}

func TestAttendanceWorkbook(t *testing.T) {
	svc := NewService(testRepo(), fixedNow)

	data, filename, err := svc.AttendanceWorkbook()
	require.NoError(t, err)
	assert.Equal(t, "attendance-2025-06-02.xlsx", filename)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Directory", "Departments"}, f.GetSheetList())

	rows, err := f.GetRows("Directory")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per employee")
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Flight Risk Score", rows[0][9])
	assert.Equal(t, "Aarav Patel", rows[1][1])
	assert.Equal(t, "81", rows[1][9])
	assert.Equal(t, "Mei Tanaka", rows[2][1])

	deptRows, err := f.GetRows("Departments")
	require.NoError(t, err)
	require.Len(t, deptRows, 3)

	byDept := map[string][]string{}
	for _, row := range deptRows[1:] {
		byDept[row[0]] = row
	}
	eng := byDept["Engineering"]
	require.NotNil(t, eng)
	assert.Equal(t, "1", eng[1])
	assert.Equal(t, "1", eng[2], "flight risk flags")
	assert.Equal(t, "1", eng[3], "pending requests")
}

func TestAttendanceWorkbook_EmptyWorkforce(t *testing.T) {
	svc := NewService(memory.NewWorkforceRepository(nil), fixedNow)

	data, _, err := svc.AttendanceWorkbook()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Directory")
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the header survives an empty workforce")
}
