package workforce

import "time"

const dateLayout = "2006-01-02"

// ========== RESPONSES ==========

type AttendanceRecordResponse struct {
	Date       string   `json:"date"` // YYYY-MM-DD
	Status     string   `json:"status"`
	PunchIn    *string  `json:"punch_in,omitempty"`
	PunchOut   *string  `json:"punch_out,omitempty"`
	TotalHours *float64 `json:"total_hours,omitempty"`
}

type LeaveRequestResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Type         string `json:"type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
}

type KeyResultResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

type GoalResponse struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	KeyResults []KeyResultResponse `json:"key_results"`
}

type KudosResponse struct {
	ID         string `json:"id"`
	From       string `json:"from"`
	FromAvatar string `json:"from_avatar"`
	To         string `json:"to"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"` // RFC 3339
}

type FlightRiskResponse struct {
	Score               int      `json:"score"`
	ContributingFactors []string `json:"contributing_factors"`
}

type StatsResponse struct {
	LeaveBalanceUsed   int     `json:"leave_balance_used"`
	LeaveBalanceTotal  int     `json:"leave_balance_total"`
	PerfectStreak      int     `json:"perfect_streak"`
	CollaborationIndex float64 `json:"collaboration_index"`
}

// EmployeeSummaryResponse is the directory listing shape.
type EmployeeSummaryResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Role       string              `json:"role"`
	Department string              `json:"department"`
	AvatarURL  string              `json:"avatar_url"`
	Email      string              `json:"email"`
	Skills     []string            `json:"skills"`
	FlightRisk *FlightRiskResponse `json:"flight_risk,omitempty"`
}

// EmployeeResponse is the full profile shape.
type EmployeeResponse struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Role       string                 `json:"role"`
	Department string                 `json:"department"`
	AvatarURL  string                 `json:"avatar_url"`
	Email      string                 `json:"email"`
	HalfDays   int                    `json:"half_days"`
	Stats      StatsResponse          `json:"stats"`
	Requests   []LeaveRequestResponse `json:"requests"`
	Skills     []string               `json:"skills"`
	Goals      []GoalResponse         `json:"goals"`
	Kudos      []KudosResponse        `json:"kudos"`
	FlightRisk *FlightRiskResponse    `json:"flight_risk,omitempty"`
}

// ========== REQUESTS ==========

type SubmitLeaveRequestRequest struct {
	Type      string `json:"type"` // leave | regularization
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status"` // Approved | Rejected
}

type GiveKudosRequest struct {
	FromID  string `json:"from_id"`
	ToID    string `json:"to_id"`
	Message string `json:"message"`
}

// ========== CONVERTERS ==========

func ToAttendanceRecordResponse(r AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		Date:       r.Date.Format(dateLayout),
		Status:     string(r.Status),
		PunchIn:    r.PunchIn,
		PunchOut:   r.PunchOut,
		TotalHours: r.TotalHours,
	}
}

func ToAttendanceRecordResponses(records []AttendanceRecord) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, len(records))
	for i, r := range records {
		out[i] = ToAttendanceRecordResponse(r)
	}
	return out
}

func ToLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Department:   string(r.Department),
		Type:         string(r.Type),
		StartDate:    r.StartDate.Format(dateLayout),
		EndDate:      r.EndDate.Format(dateLayout),
		Status:       string(r.Status),
		Reason:       r.Reason,
	}
}

func ToLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, len(requests))
	for i, r := range requests {
		out[i] = ToLeaveRequestResponse(r)
	}
	return out
}

func ToKudosResponse(k Kudos) KudosResponse {
	return KudosResponse{
		ID:         k.ID,
		From:       k.From,
		FromAvatar: k.FromAvatar,
		To:         k.To,
		Message:    k.Message,
		Timestamp:  k.Timestamp.Format(time.RFC3339),
	}
}

func ToKudosResponses(kudos []Kudos) []KudosResponse {
	out := make([]KudosResponse, len(kudos))
	for i, k := range kudos {
		out[i] = ToKudosResponse(k)
	}
	return out
}

func toFlightRiskResponse(fr *FlightRisk) *FlightRiskResponse {
	if fr == nil {
		return nil
	}
	return &FlightRiskResponse{
		Score:               fr.Score,
		ContributingFactors: fr.ContributingFactors,
	}
}

func ToEmployeeSummaryResponse(e Employee) EmployeeSummaryResponse {
	return EmployeeSummaryResponse{
		ID:         e.ID,
		Name:       e.Name,
		Role:       e.Role,
		Department: string(e.Department),
		AvatarURL:  e.AvatarURL,
		Email:      e.Email,
		Skills:     e.Skills,
		FlightRisk: toFlightRiskResponse(e.FlightRisk),
	}
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	goals := make([]GoalResponse, len(e.Goals))
	for i, g := range e.Goals {
		krs := make([]KeyResultResponse, len(g.KeyResults))
		for j, kr := range g.KeyResults {
			krs[j] = KeyResultResponse(kr)
		}
		goals[i] = GoalResponse{ID: g.ID, Title: g.Title, KeyResults: krs}
	}

	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Role:       e.Role,
		Department: string(e.Department),
		AvatarURL:  e.AvatarURL,
		Email:      e.Email,
		HalfDays:   e.HalfDays,
		Stats: StatsResponse{
			LeaveBalanceUsed:   e.Stats.LeaveBalance.Used,
			LeaveBalanceTotal:  e.Stats.LeaveBalance.Total,
			PerfectStreak:      e.Stats.PerfectStreak,
			CollaborationIndex: e.Stats.CollaborationIndex,
		},
		Requests:   ToLeaveRequestResponses(e.Requests),
		Skills:     e.Skills,
		Goals:      goals,
		Kudos:      ToKudosResponses(e.Kudos),
		FlightRisk: toFlightRiskResponse(e.FlightRisk),
	}
}
