package workforce

import (
	"time"
)

// Department is one of the fixed org units the generator distributes
// employees across.
type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentRnD         Department = "R&D"
	DepartmentHR          Department = "HR"
)

// Departments returns every department in display order.
func Departments() []Department {
	return []Department{
		DepartmentEngineering,
		DepartmentSales,
		DepartmentMarketing,
		DepartmentRnD,
		DepartmentHR,
	}
}

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusHalfDay AttendanceStatus = "half-day"
	AttendanceStatusOnLeave AttendanceStatus = "on-leave"
	AttendanceStatusHoliday AttendanceStatus = "holiday"
)

// AttendanceRecord is one business-day entry in an employee's history.
// Punch fields are set only for present and half-day records.
type AttendanceRecord struct {
	Date       time.Time
	Status     AttendanceStatus
	PunchIn    *string // HH:MM
	PunchOut   *string // HH:MM
	TotalHours *float64
}

type RequestType string

const (
	RequestTypeLeave          RequestType = "leave"
	RequestTypeRegularization RequestType = "regularization"
)

type RequestStatus string

const (
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusRejected RequestStatus = "Rejected"
)

// LeaveRequest is a formal leave or regularization request. Generated
// requests always reference a date the employee's attendance marks on-leave.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Department   Department
	Type         RequestType
	StartDate    time.Time
	EndDate      time.Time
	Status       RequestStatus
	Reason       string
}

type KeyResult struct {
	ID          string
	Description string
	Progress    int // percent
}

type Goal struct {
	ID         string
	Title      string
	KeyResults []KeyResult
}

type Kudos struct {
	ID         string
	From       string
	FromAvatar string
	To         string
	Message    string
	Timestamp  time.Time
}

// FlightRisk marks an employee the attrition model flags. Present on a small
// fraction of the workforce; Score is always in (70,99].
type FlightRisk struct {
	Score               int
	ContributingFactors []string
}

type LeaveBalance struct {
	Used  int
	Total int
}

type Stats struct {
	LeaveBalance       LeaveBalance
	PerfectStreak      int
	CollaborationIndex float64
}

// Employee is one synthetic workforce entity. Attendance is ordered newest
// first. Stats.LeaveBalance.Used is derived from approved leave requests,
// never set independently.
type Employee struct {
	ID         string
	Name       string
	Role       string
	Department Department
	AvatarURL  string
	Email      string
	HalfDays   int
	Stats      Stats
	Attendance []AttendanceRecord
	Requests   []LeaveRequest
	Skills     []string
	Goals      []Goal
	Kudos      []Kudos
	FlightRisk *FlightRisk
}

// Clone returns a deep copy so store reads and copy-on-write mutations never
// alias the held record.
func (e Employee) Clone() Employee {
	out := e

	out.Attendance = make([]AttendanceRecord, len(e.Attendance))
	for i, rec := range e.Attendance {
		out.Attendance[i] = rec
		if rec.PunchIn != nil {
			v := *rec.PunchIn
			out.Attendance[i].PunchIn = &v
		}
		if rec.PunchOut != nil {
			v := *rec.PunchOut
			out.Attendance[i].PunchOut = &v
		}
		if rec.TotalHours != nil {
			v := *rec.TotalHours
			out.Attendance[i].TotalHours = &v
		}
	}

	out.Requests = append([]LeaveRequest(nil), e.Requests...)
	out.Skills = append([]string(nil), e.Skills...)
	out.Kudos = append([]Kudos(nil), e.Kudos...)

	out.Goals = make([]Goal, len(e.Goals))
	for i, g := range e.Goals {
		out.Goals[i] = g
		out.Goals[i].KeyResults = append([]KeyResult(nil), g.KeyResults...)
	}

	if e.FlightRisk != nil {
		fr := FlightRisk{
			Score:               e.FlightRisk.Score,
			ContributingFactors: append([]string(nil), e.FlightRisk.ContributingFactors...),
		}
		out.FlightRisk = &fr
	}

	return out
}
