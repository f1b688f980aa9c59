package workforce

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"
	"time"

	domain "github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
	"github.com/synapse-hq/synapse-backend-go/internal/fixtures"
	"github.com/synapse-hq/synapse-backend-go/internal/pkg/rng"
	"golang.org/x/sync/errgroup"
)

const (
	// firstEmployeeID anchors the numeric id space; entity i gets id 101+i
	// and uses that number as its seed.
	firstEmployeeID = 101

	leaveBalanceTotal = 20
	flightRiskChance  = 0.1

	kudosFeedSize = 20
	kudosSeedBase = 7919
)

// Config tunes the workforce build. Now anchors the attendance window and
// every "current year" decision, so tests can pin it.
type Config struct {
	Size       int
	WindowDays int
	Now        time.Time
}

// Generator builds the synthetic workforce. Each employee is a pure function
// of its numeric id and the fixed pools, so the build fans out per entity.
type Generator struct {
	cfg Config
}

func NewGenerator(cfg Config) *Generator {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now().UTC()
	}
	return &Generator{cfg: cfg}
}

// Build generates the full collection: bulk entities, the seeded kudos feed,
// and the pinned demo employees upserted by id.
func (g *Generator) Build() []domain.Employee {
	employees := make([]domain.Employee, g.cfg.Size)

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i := 0; i < g.cfg.Size; i++ {
		eg.Go(func() error {
			employees[i] = g.buildEmployee(i)
			return nil
		})
	}
	// Builders are infallible; Wait only synchronizes the fan-out.
	_ = eg.Wait()

	g.attachKudos(employees)

	for _, pinned := range fixtures.PinnedEmployees(employees) {
		employees = upsert(employees, pinned)
	}
	return employees
}

func (g *Generator) buildEmployee(i int) domain.Employee {
	id := fmt.Sprintf("%d", firstEmployeeID+i)
	seed := int64(firstEmployeeID + i)

	departments := domain.Departments()
	dept := departments[rng.IntN(seed, len(departments))]
	band := roleBands[rng.IntN(seed+1, len(roleBands))]
	role := roleFor(dept, band)

	firstName := firstNames[rng.IntN(seed+2, len(firstNames))]
	lastName := lastNames[rng.IntN(seed+3, len(lastNames))]
	name := firstName + " " + lastName
	avatar := fmt.Sprintf("https://picsum.photos/seed/%s/150/150", id)

	end := g.cfg.Now
	start := end.AddDate(0, 0, -g.cfg.WindowDays)
	attendance := GenerateAttendance(seed, start, end)
	requests := GenerateRequests(seed, id, name, dept, attendance, g.cfg.Now)

	usedLeave := 0
	for _, r := range requests {
		if r.Status == domain.RequestStatusApproved && r.Type == domain.RequestTypeLeave {
			usedLeave++
		}
	}
	halfDays := 0
	for _, a := range attendance {
		if a.Status == domain.AttendanceStatusHalfDay {
			halfDays++
		}
	}

	emp := domain.Employee{
		ID:         id,
		Name:       name,
		Role:       role,
		Department: dept,
		AvatarURL:  avatar,
		Email:      fmt.Sprintf("%s.%s%s@synapse.corp", strings.ToLower(firstName), strings.ToLower(lastName), id),
		HalfDays:   halfDays,
		Stats: domain.Stats{
			LeaveBalance:       domain.LeaveBalance{Used: usedLeave, Total: leaveBalanceTotal},
			PerfectStreak:      rng.IntN(seed+8, 80),
			CollaborationIndex: math.Round(rng.Range(seed+9, 6, 10)*10) / 10,
		},
		Attendance: attendance,
		Requests:   requests,
		Skills:     pickDistinct(skillsByDepartment[dept], rng.IntN(seed+5, 3)+2, seed+13),
		Goals:      buildGoals(id, seed, dept),
		Kudos:      []domain.Kudos{},
	}

	if rng.Chance(seed+4, flightRiskChance) {
		emp.FlightRisk = &domain.FlightRisk{
			Score:               71 + rng.IntN(seed+10, 29),
			ContributingFactors: pickDistinct(flightRiskFactors, 1+rng.IntN(seed+11, 3), seed+12),
		}
	}
	return emp
}

func buildGoals(id string, seed int64, dept domain.Department) []domain.Goal {
	templates := okrsByDepartment[dept]
	if len(templates) == 0 {
		return []domain.Goal{}
	}
	tmpl := templates[rng.IntN(seed+6, len(templates))]

	krs := make([]domain.KeyResult, len(tmpl.KeyResults))
	for idx, kr := range tmpl.KeyResults {
		krs[idx] = domain.KeyResult{
			ID:          fmt.Sprintf("kr-%s-1-%d", id, idx),
			Description: kr,
			Progress:    rng.IntN(seed+7+int64(idx), 70) + 20,
		}
	}
	return []domain.Goal{{
		ID:         fmt.Sprintf("goal-%s-1", id),
		Title:      tmpl.Objective,
		KeyResults: krs,
	}}
}

// pickDistinct takes n distinct entries from pool starting at a seeded offset.
func pickDistinct(pool []string, n int, seed int64) []string {
	if len(pool) == 0 {
		return []string{}
	}
	if n > len(pool) {
		n = len(pool)
	}
	start := rng.IntN(seed, len(pool))
	out := make([]string, n)
	for k := 0; k < n; k++ {
		out[k] = pool[(start+k)%len(pool)]
	}
	return out
}

// attachKudos seeds the company-wide kudos feed and distributes each entry
// onto its receiver.
func (g *Generator) attachKudos(employees []domain.Employee) {
	n := len(employees)
	if n == 0 {
		return
	}
	for i := 0; i < kudosFeedSize; i++ {
		seed := int64(kudosSeedBase + i*10)
		sender := &employees[rng.IntN(seed, n)]
		receiver := &employees[rng.IntN(seed+1, n)]
		message := kudosMessages[rng.IntN(seed+2, len(kudosMessages))]

		receiver.Kudos = append(receiver.Kudos, domain.Kudos{
			ID:         fmt.Sprintf("kudo-%d", i+1),
			From:       sender.Name,
			FromAvatar: sender.AvatarURL,
			To:         receiver.Name,
			Message:    fmt.Sprintf("%s, thank you %s", receiver.Name, message),
			Timestamp:  g.cfg.Now.AddDate(0, 0, -rng.IntN(seed+3, 10)),
		})
	}
	for i := range employees {
		sort.SliceStable(employees[i].Kudos, func(a, b int) bool {
			return employees[i].Kudos[a].Timestamp.After(employees[i].Kudos[b].Timestamp)
		})
	}
}

// upsert replaces by id when present, else prepends, preserving the demo
// expectation that pinned employees surface first.
func upsert(employees []domain.Employee, e domain.Employee) []domain.Employee {
	for i := range employees {
		if employees[i].ID == e.ID {
			employees[i] = e
			return employees
		}
	}
	return append([]domain.Employee{e}, employees...)
}
