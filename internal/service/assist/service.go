// Package assist fronts the Gemini-backed employee helpers: the profile
// chat assistant and the missed-punch triage call.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/synapse-hq/synapse-backend-go/internal/domain/assist"
	"github.com/synapse-hq/synapse-backend-go/internal/domain/workforce"
)

const chatHistoryWindow = 10

type Service struct {
	generator TextGenerator
	repo      workforce.Repository
}

func NewService(generator TextGenerator, repo workforce.Repository) *Service {
	return &Service{generator: generator, repo: repo}
}

// Chat answers a free-form question, grounding the model with the scoped
// employee's balance, requests and recent attendance when an id is given.
func (s *Service) Chat(ctx context.Context, req assist.ChatRequest) (assist.ChatResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return assist.ChatResponse{}, assist.ErrEmptyQuery
	}

	prompt := generalPrompt(req.Query)
	if req.EmployeeID != "" {
		e, err := s.repo.GetByID(req.EmployeeID)
		if err != nil {
			return assist.ChatResponse{}, err
		}
		prompt = chatPrompt(e, req.Query)
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return assist.ChatResponse{}, fmt.Errorf("%w: %v", assist.ErrUnavailable, err)
	}
	return assist.ChatResponse{Response: strings.TrimSpace(text)}, nil
}

// MissedPunch asks the model whether a missed punch-in warrants a nudge,
// expecting a strict JSON verdict back.
func (s *Service) MissedPunch(ctx context.Context, input assist.MissedPunchInput) (assist.MissedPunchDecision, error) {
	text, err := s.generator.Generate(ctx, missedPunchPrompt(input))
	if err != nil {
		return assist.MissedPunchDecision{}, fmt.Errorf("%w: %v", assist.ErrUnavailable, err)
	}

	var decision assist.MissedPunchDecision
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &decision); err != nil {
		return assist.MissedPunchDecision{}, fmt.Errorf("%w: unparseable verdict: %v", assist.ErrUnavailable, err)
	}
	return decision, nil
}

func generalPrompt(query string) string {
	return "You are an HR assistant for general workplace questions. " +
		"Answer concisely and decline topics outside HR.\n\nQuestion: " + query
}

func chatPrompt(e workforce.Employee, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an HR assistant answering questions about a single employee.\n\n")
	fmt.Fprintf(&b, "Employee: %s (%s, %s)\n", e.Name, e.Role, e.Department)
	fmt.Fprintf(&b, "Leave balance: %d of %d days used\n", e.Stats.LeaveBalance.Used, e.Stats.LeaveBalance.Total)
	fmt.Fprintf(&b, "Half days this period: %d\n", e.HalfDays)

	if len(e.Requests) > 0 {
		b.WriteString("Requests:\n")
		for _, r := range e.Requests {
			fmt.Fprintf(&b, "- %s %s: %s to %s (%s)\n",
				r.Type, r.Status, r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"), r.Reason)
		}
	}

	recent := e.Attendance
	if len(recent) > chatHistoryWindow {
		recent = recent[:chatHistoryWindow]
	}
	if len(recent) > 0 {
		b.WriteString("Recent attendance (newest first):\n")
		for _, rec := range recent {
			fmt.Fprintf(&b, "- %s: %s\n", rec.Date.Format("2006-01-02"), rec.Status)
		}
	}

	fmt.Fprintf(&b, "\nQuestion: %s\n", query)
	b.WriteString("Answer concisely using only the data above.")
	return b.String()
}

func missedPunchPrompt(input assist.MissedPunchInput) string {
	var b strings.Builder
	b.WriteString("An employee has not punched in past their usual time. Decide whether to send a reminder.\n\n")
	fmt.Fprintf(&b, "Employee ID: %s\n", input.EmployeeID)
	fmt.Fprintf(&b, "Role: %s\n", input.EmployeeRole)
	fmt.Fprintf(&b, "Day of week: %s\n", input.DayOfWeek)
	fmt.Fprintf(&b, "Usual punch-in: %s\n", input.UsualPunchTime)
	fmt.Fprintf(&b, "Current time: %s\n", input.MissedPunchTime)
	fmt.Fprintf(&b, "Recently on leave: %t\n", input.RecentLeave)
	b.WriteString("\nRespond with only a JSON object: {\"should_notify\": bool, \"reason\": string}")
	return b.String()
}

// stripCodeFence unwraps ```json ... ``` fences the model sometimes adds.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
