package workforce

import (
	"fmt"
	"time"

	domain "github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
	"github.com/synapse-hq/synapse-backend-go/internal/pkg/rng"
)

const maxGeneratedRequests = 5

// Seeded status split for requests in the current year. Requests from prior
// years are always settled as Approved.
const (
	approvedThreshold = 0.7
	pendingThreshold  = 0.9
)

// GenerateRequests derives formal leave requests from an employee's on-leave
// attendance days, in chronological order, capped at maxGeneratedRequests.
// Roughly half the candidate days become requests; the rest model unreported
// or pre-approved absences. Every start date is guaranteed to be an on-leave
// attendance date of the same employee.
func GenerateRequests(seed int64, emp, name string, dept domain.Department, attendance []domain.AttendanceRecord, now time.Time) []domain.LeaveRequest {
	var onLeaveDays []time.Time
	for i := len(attendance) - 1; i >= 0; i-- { // attendance is newest first
		if attendance[i].Status == domain.AttendanceStatusOnLeave {
			onLeaveDays = append(onLeaveDays, attendance[i].Date)
		}
	}

	var requests []domain.LeaveRequest
	for i := 0; i < len(onLeaveDays) && i < maxGeneratedRequests; i++ {
		if rng.Float(seed+int64(i)*10) <= 0.5 {
			continue
		}

		startDate := onLeaveDays[i]
		endDate := startDate.AddDate(0, 0, rng.IntN(seed+int64(i)*20, 4))

		var status domain.RequestStatus
		if startDate.Year() < now.Year() {
			status = domain.RequestStatusApproved
		} else {
			switch r := rng.Float(seed + int64(i)*30); {
			case r < approvedThreshold:
				status = domain.RequestStatusApproved
			case r < pendingThreshold:
				status = domain.RequestStatusPending
			default:
				status = domain.RequestStatusRejected
			}
		}

		requests = append(requests, domain.LeaveRequest{
			ID:           fmt.Sprintf("req-%s-%d", emp, i),
			EmployeeID:   emp,
			EmployeeName: name,
			Department:   dept,
			Type:         domain.RequestTypeLeave,
			StartDate:    startDate,
			EndDate:      endDate,
			Status:       status,
			Reason:       leaveReasons[rng.IntN(seed+int64(i)*40, len(leaveReasons))],
		})
	}
	return requests
}
