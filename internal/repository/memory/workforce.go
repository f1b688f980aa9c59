// Package memory holds the generated workforce for the process lifetime.
// Reads hand out deep copies and mutations are copy-on-write, so simulated
// user actions never leak aliases of the held records and are never persisted
// anywhere.
package memory

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
)

const dateLayout = "2006-01-02"

type WorkforceRepository struct {
	mu    sync.RWMutex
	byID  map[string]workforce.Employee
	order []string
}

// NewWorkforceRepository seeds the store with a generated population,
// preserving its order for directory listings.
func NewWorkforceRepository(employees []workforce.Employee) *WorkforceRepository {
	repo := &WorkforceRepository{
		byID:  make(map[string]workforce.Employee, len(employees)),
		order: make([]string, 0, len(employees)),
	}
	for _, e := range employees {
		if _, ok := repo.byID[e.ID]; !ok {
			repo.order = append(repo.order, e.ID)
		}
		repo.byID[e.ID] = e.Clone()
	}
	return repo
}

func (r *WorkforceRepository) List(filter workforce.ListFilter) []workforce.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))

	var out []workforce.Employee
	for _, id := range r.order {
		e := r.byID[id]
		if filter.Department != "" && string(e.Department) != filter.Department {
			continue
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		out = append(out, e.Clone())
	}
	return out
}

func matchesQuery(e workforce.Employee, query string) bool {
	return strings.Contains(strings.ToLower(e.Name), query) ||
		strings.Contains(strings.ToLower(e.Role), query) ||
		strings.Contains(strings.ToLower(e.Email), query)
}

func (r *WorkforceRepository) GetByID(id string) (workforce.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return workforce.Employee{}, workforce.ErrEmployeeNotFound
	}
	return e.Clone(), nil
}

func (r *WorkforceRepository) Upsert(e workforce.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; !ok {
		r.order = append(r.order, e.ID)
	}
	r.byID[e.ID] = e.Clone()
}

func (r *WorkforceRepository) AllKudos() []workforce.Kudos {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []workforce.Kudos
	for _, id := range r.order {
		out = append(out, r.byID[id].Kudos...)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Timestamp.After(out[b].Timestamp)
	})
	return out
}

func (r *WorkforceRepository) AppendKudos(receiverID string, k workforce.Kudos) (workforce.Kudos, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	receiver, ok := r.byID[receiverID]
	if !ok {
		return workforce.Kudos{}, workforce.ErrEmployeeNotFound
	}

	if k.ID == "" {
		k.ID = "kudo-" + uuid.NewString()
	}
	k.To = receiver.Name

	updated := receiver.Clone()
	updated.Kudos = append([]workforce.Kudos{k}, updated.Kudos...)
	r.byID[receiverID] = updated
	return k, nil
}

func (r *WorkforceRepository) SubmitRequest(employeeID string, req workforce.LeaveRequest) (workforce.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[employeeID]
	if !ok {
		return workforce.LeaveRequest{}, workforce.ErrEmployeeNotFound
	}

	if req.ID == "" {
		req.ID = "req-" + uuid.NewString()
	}
	req.EmployeeID = e.ID
	req.EmployeeName = e.Name
	req.Department = e.Department
	req.Status = workforce.RequestStatusPending

	updated := e.Clone()
	updated.Requests = append([]workforce.LeaveRequest{req}, updated.Requests...)
	r.byID[employeeID] = updated
	return req, nil
}

func (r *WorkforceRepository) SetRequestStatus(requestID string, status workforce.RequestStatus) (workforce.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.byID {
		for i, req := range e.Requests {
			if req.ID != requestID {
				continue
			}
			if req.Status != workforce.RequestStatusPending {
				return workforce.LeaveRequest{}, workforce.ErrRequestAlreadyProcessed
			}

			updated := e.Clone()
			updated.Requests[i].Status = status
			// Keep the derived balance in sync with approvals.
			if status == workforce.RequestStatusApproved && req.Type == workforce.RequestTypeLeave {
				updated.Stats.LeaveBalance.Used++
			}
			r.byID[id] = updated
			return updated.Requests[i], nil
		}
	}
	return workforce.LeaveRequest{}, workforce.ErrRequestNotFound
}

func (r *WorkforceRepository) PunchIn(employeeID string, now time.Time) (workforce.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[employeeID]
	if !ok {
		return workforce.AttendanceRecord{}, workforce.ErrEmployeeNotFound
	}

	today := now.Format(dateLayout)
	if idx := findRecord(e.Attendance, today); idx >= 0 && e.Attendance[idx].PunchIn != nil {
		return workforce.AttendanceRecord{}, workforce.ErrAlreadyPunchedIn
	}

	punchIn := now.Format("15:04")
	rec := workforce.AttendanceRecord{
		Date:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Status:  workforce.AttendanceStatusPresent,
		PunchIn: &punchIn,
	}

	updated := e.Clone()
	if idx := findRecord(updated.Attendance, today); idx >= 0 {
		updated.Attendance[idx] = rec
	} else {
		updated.Attendance = append([]workforce.AttendanceRecord{rec}, updated.Attendance...)
	}
	r.byID[employeeID] = updated
	return rec, nil
}

func (r *WorkforceRepository) PunchOut(employeeID string, now time.Time) (workforce.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[employeeID]
	if !ok {
		return workforce.AttendanceRecord{}, workforce.ErrEmployeeNotFound
	}

	idx := findRecord(e.Attendance, now.Format(dateLayout))
	if idx < 0 || e.Attendance[idx].PunchIn == nil || e.Attendance[idx].PunchOut != nil {
		return workforce.AttendanceRecord{}, workforce.ErrNotPunchedIn
	}

	updated := e.Clone()
	rec := &updated.Attendance[idx]

	punchOut := now.Format("15:04")
	rec.PunchOut = &punchOut
	if in, err := time.Parse("15:04", *rec.PunchIn); err == nil {
		out, _ := time.Parse("15:04", punchOut)
		hours := math.Round(out.Sub(in).Hours()*100) / 100
		if hours < 0 {
			hours = 0
		}
		rec.TotalHours = &hours
	}

	r.byID[employeeID] = updated
	return *rec, nil
}

func findRecord(records []workforce.AttendanceRecord, date string) int {
	for i, rec := range records {
		if rec.Date.Format(dateLayout) == date {
			return i
		}
	}
	return -1
}

// String implements fmt.Stringer for debug logging.
func (r *WorkforceRepository) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fmt.Sprintf("memory.WorkforceRepository(%d employees)", len(r.order))
}
