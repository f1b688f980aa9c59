package fixtures

import (
	"fmt"

	"github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
)

// ==========================================
// PINNED DEMO EMPLOYEES
// ==========================================
//
// A handful of named employees back fixed demo routes and need stable,
// narratively consistent records. Each one borrows the generated history of a
// matching template employee and overrides the identity fields, then is
// upserted into the bulk collection by id.

// PinnedEmployees returns the hand-authored records derived from the bulk
// generation. The caller upserts them (replace by id, else prepend).
func PinnedEmployees(generated []workforce.Employee) []workforce.Employee {
	if len(generated) == 0 {
		return nil
	}

	priya := rebrand(
		findTemplate(generated, func(e workforce.Employee) bool {
			return e.Department == workforce.DepartmentEngineering && e.Role == "Tech Lead"
		}, generated[0]),
		"282", "Priya Sharma", "Tech Lead", workforce.DepartmentEngineering,
		"priya.sharma@synapse.corp",
	)

	davidTemplate := findTemplate(generated, func(e workforce.Employee) bool {
		return e.Department == workforce.DepartmentRnD && e.FlightRisk != nil
	}, generated[min(1, len(generated)-1)])
	david := rebrand(
		davidTemplate,
		"102", "David Chen", "Senior Research Scientist", workforce.DepartmentRnD,
		"david.chen@synapse.corp",
	)
	david.FlightRisk = &workforce.FlightRisk{
		Score: 78,
		ContributingFactors: []string{
			"↓ Decreased time in collaboration zones",
			"↑ Increased short-notice leaves",
		},
	}

	return []workforce.Employee{priya, david}
}

func findTemplate(generated []workforce.Employee, match func(workforce.Employee) bool, fallback workforce.Employee) workforce.Employee {
	for _, e := range generated {
		if match(e) {
			return e
		}
	}
	return fallback
}

// rebrand deep-copies a template and rewrites its identity, keeping the
// generated attendance, requests, skills and goals. Request ids and ownership
// are remapped so the pinned copy never collides with its template.
func rebrand(template workforce.Employee, id, name, role string, dept workforce.Department, email string) workforce.Employee {
	e := template.Clone()
	e.ID = id
	e.Name = name
	e.Role = role
	e.Department = dept
	e.Email = email
	e.AvatarURL = fmt.Sprintf("https://picsum.photos/seed/%s/150/150", id)

	for i := range e.Requests {
		e.Requests[i].ID = fmt.Sprintf("req-%s-%d", id, i)
		e.Requests[i].EmployeeID = id
		e.Requests[i].EmployeeName = name
		e.Requests[i].Department = dept
	}
	return e
}
