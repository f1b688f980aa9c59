package assist

// ========== CHATBOT ==========

type ChatRequest struct {
	// EmployeeID scopes the conversation to one employee's data. Empty for
	// general HR-policy questions.
	EmployeeID string `json:"employee_id,omitempty"`
	Query      string `json:"query"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ========== MISSED PUNCH ==========

// MissedPunchInput describes a missed punch event for the notification
// decision.
type MissedPunchInput struct {
	EmployeeID      string `json:"employee_id"`
	EmployeeRole    string `json:"employee_role"`
	MissedPunchTime string `json:"missed_punch_time"` // ISO 8601
	UsualPunchTime  string `json:"usual_punch_time"`  // ISO 8601
	DayOfWeek       string `json:"day_of_week"`
	RecentLeave     bool   `json:"recent_leave"`
}

// MissedPunchDecision is the model's structured verdict.
type MissedPunchDecision struct {
	ShouldNotify bool   `json:"should_notify"`
	Reason       string `json:"reason"`
}
