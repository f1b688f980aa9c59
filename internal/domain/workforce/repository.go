package workforce

import "time"

// ListFilter narrows directory listings.
type ListFilter struct {
	Department string
	Query      string // matched against name, role and email, case-insensitive
}

// Repository holds the generated workforce for the process lifetime.
// The population is built once at startup; mutations are local simulated
// user actions and are never persisted back into the generator's pools.
type Repository interface {
	List(filter ListFilter) []Employee
	GetByID(id string) (Employee, error)
	Upsert(e Employee)

	AllKudos() []Kudos
	AppendKudos(receiverID string, k Kudos) (Kudos, error)

	SubmitRequest(employeeID string, req LeaveRequest) (LeaveRequest, error)
	SetRequestStatus(requestID string, status RequestStatus) (LeaveRequest, error)

	PunchIn(employeeID string, now time.Time) (AttendanceRecord, error)
	PunchOut(employeeID string, now time.Time) (AttendanceRecord, error)
}
