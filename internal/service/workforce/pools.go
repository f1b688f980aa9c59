package workforce

import (
	domain "github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
)

// ==========================================
// FIXED GENERATION POOLS
// ==========================================

var firstNames = []string{
	"Aarav", "Vivaan", "Aditya", "Vihaan", "Arjun", "Sai", "Reyansh", "Ayaan",
	"Krishna", "Ishaan", "Ananya", "Diya", "Saanvi", "Aadhya", "Pari", "Riya",
	"Myra", "Aarohi", "Isha", "Prisha", "Liam", "Olivia", "Noah", "Emma",
	"Oliver", "Ava", "Elijah", "Charlotte", "William", "Sophia", "James",
	"Isabella", "Benjamin", "Mia", "Lucas", "Amelia", "Henry", "Harper",
	"Alexander", "Evelyn", "Priya", "David", "Fatima", "Chen", "Al-Jamil",
	"Sharma", "Clark", "Martin", "Aamir", "Khan", "Wilson",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Lewis", "Robinson", "Walker", "Gupta", "Wang", "Khan", "Patel",
	"Sharma", "Chen",
}

// roleBands orders the seniority bands used for the seeded role pick.
var roleBands = []string{"Junior", "Associate", "Senior", "Lead", "Manager"}

var rolesByDepartment = map[domain.Department]map[string][]string{
	domain.DepartmentEngineering: {
		"Junior":    {"Junior Software Engineer"},
		"Associate": {"Software Engineer"},
		"Senior":    {"Senior Software Engineer"},
		"Lead":      {"Tech Lead"},
		"Manager":   {"Engineering Manager"},
	},
	domain.DepartmentSales: {
		"Junior":    {"Sales Development Rep"},
		"Associate": {"Account Executive"},
		"Senior":    {"Senior Account Executive"},
		"Lead":      {"Team Lead, Sales"},
		"Manager":   {"Sales Manager"},
	},
	domain.DepartmentMarketing: {
		"Junior":    {"Marketing Coordinator"},
		"Associate": {"Marketing Associate"},
		"Senior":    {"Senior Marketing Associate"},
		"Lead":      {"Marketing Lead"},
		"Manager":   {"Marketing Manager"},
	},
	domain.DepartmentRnD: {
		"Junior":    {"Research Assistant"},
		"Associate": {"Research Scientist"},
		"Senior":    {"Senior Research Scientist"},
		"Lead":      {"Lead Scientist"},
		"Manager":   {"R&D Manager"},
	},
	domain.DepartmentHR: {
		"Junior":    {"HR Coordinator"},
		"Associate": {"HR Generalist"},
		"Senior":    {"Senior HR Business Partner"},
		"Lead":      {"HR Lead"},
		"Manager":   {"HR Manager"},
	},
}

var skillsByDepartment = map[domain.Department][]string{
	domain.DepartmentEngineering: {"React", "Node.js", "Python", "Go", "Kubernetes", "AWS", "SQL", "System Design"},
	domain.DepartmentSales:       {"Salesforce", "Negotiation", "Lead Generation", "CRM", "Closing", "Communication"},
	domain.DepartmentMarketing:   {"SEO", "Content Marketing", "Google Analytics", "Email Marketing", "Social Media"},
	domain.DepartmentRnD:         {"Data Analysis", "Python", "Machine Learning", "Statistics", "MATLAB", "C++"},
	domain.DepartmentHR:          {"Recruiting", "Employee Relations", "Onboarding", "Compensation", "HRIS", "Labor Law"},
}

type okrTemplate struct {
	Objective  string
	KeyResults []string
}

var okrsByDepartment = map[domain.Department][]okrTemplate{
	domain.DepartmentEngineering: {
		{Objective: "Refactor authentication module", KeyResults: []string{"Reduce latency by 20%", "Achieve 99.9% uptime", "Update documentation"}},
		{Objective: "Launch new feature X", KeyResults: []string{"Complete code development", "Pass all QA tests", "Deploy to production"}},
	},
	domain.DepartmentSales: {
		{Objective: "Exceed Q4 lead generation target by 10%", KeyResults: []string{"Generate 150 new MQLs", "Achieve a 20% conversion rate", "Book 30 product demos"}},
	},
	domain.DepartmentMarketing: {
		{Objective: "Increase organic traffic by 15%", KeyResults: []string{"Publish 12 new blog posts", "Improve top 10 keyword rankings", "Acquire 20 new backlinks"}},
	},
	domain.DepartmentRnD: {
		{Objective: "Validate new research hypothesis", KeyResults: []string{"Complete literature review", "Run 50 simulations", "Publish findings in a preliminary report"}},
	},
	domain.DepartmentHR: {
		{Objective: "Improve new hire onboarding experience", KeyResults: []string{"Reduce time-to-productivity by 10%", "Achieve a 95% satisfaction score", "Automate 3 manual onboarding tasks"}},
	},
}

var flightRiskFactors = []string{
	"↓ Decreased time in collaboration zones",
	"↑ Increased short-notice leaves",
	"↓ Below target Collaboration Index",
	"↓ Reduced project velocity",
	"↑ Increase in after-hours work",
}

var leaveReasons = []string{
	"Family vacation",
	"Medical appointment",
	"Personal reasons",
	"Conference attendance",
	"Sick leave",
}

var kudosMessages = []string{
	"for always being a team player!",
	"for their amazing problem-solving skills on the latest project.",
	"for going above and beyond to help out.",
	"for their incredible presentation skills.",
	"for being a great mentor.",
	"for their positive attitude and energy.",
}

// roleFor resolves a department/band pair, falling back to the Associate band
// so an unconfigured pool never yields an empty role.
func roleFor(dept domain.Department, band string) string {
	bands, ok := rolesByDepartment[dept]
	if !ok {
		return "Associate"
	}
	if roles := bands[band]; len(roles) > 0 {
		return roles[0]
	}
	if roles := bands["Associate"]; len(roles) > 0 {
		return roles[0]
	}
	return "Associate"
}
