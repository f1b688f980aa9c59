package dashboard

import "github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"

// ========== HR DASHBOARD ==========

// HRDashboardResponse is the combined payload for the HR landing dashboard.
type HRDashboardResponse struct {
	WorkforcePulse          WorkforcePulseResponse            `json:"workforce_pulse"`
	FlightRiskHotlist       []HotlistEntryResponse            `json:"flight_risk_hotlist"`
	DepartmentCollaboration []DepartmentCollaborationResponse `json:"department_collaboration"`
	PendingRequests         []workforce.LeaveRequestResponse  `json:"pending_requests"`
	UpcomingAnniversaries   []AnniversaryResponse             `json:"upcoming_anniversaries"`
}

// WorkforcePulseResponse is the headline tally strip.
type WorkforcePulseResponse struct {
	TotalPresent     int `json:"total_present"`
	TotalWorkforce   int `json:"total_workforce"`
	OnLeave          int `json:"on_leave"`
	HighFlightRisk   int `json:"high_flight_risk"`
	PendingApprovals int `json:"pending_approvals"`
}

// HotlistEntryResponse is one row of the flight-risk hotlist, sorted
// descending by score, at most five rows.
type HotlistEntryResponse struct {
	EmployeeID          string   `json:"employee_id"`
	Name                string   `json:"name"`
	Role                string   `json:"role"`
	Department          string   `json:"department"`
	AvatarURL           string   `json:"avatar_url"`
	Score               int      `json:"score"`
	ContributingFactors []string `json:"contributing_factors"`
}

// DepartmentCollaborationResponse compares a department's mean collaboration
// index against the fixed target used for threshold coloring.
type DepartmentCollaborationResponse struct {
	Name               string  `json:"name"`
	CollaborationIndex float64 `json:"collaboration_index"`
	Target             float64 `json:"target"`
}

type AnniversaryResponse struct {
	Name  string `json:"name"`
	Date  string `json:"date"` // e.g. "Sep 12"
	Years int    `json:"years"`
}

// ========== TODAY'S ATTENDANCE ==========

// TodayAttendanceResponse tallies today's record status across the workforce.
type TodayAttendanceResponse struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Present int    `json:"present"`
	OnLeave int    `json:"on_leave"`
	HalfDay int    `json:"half_day"`
	Absent  int    `json:"absent"`
}
